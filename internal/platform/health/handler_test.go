package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.Register(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestReadiness(t *testing.T) {
	h := New("test")
	h.RegisterCheck("database", func(context.Context) error { return nil })

	rec := serve(h, "/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)

	h.RegisterCheck("redis", func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "checks run with a deadline")
		return errors.New("connection refused")
	})
	rec = serve(h, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_ready", body.Status)
	assert.Equal(t, "up", body.Checks["database"])
	assert.Equal(t, "down: connection refused", body.Checks["redis"])
}

func TestLivenessAndStatus(t *testing.T) {
	h := New("test")
	assert.Equal(t, http.StatusOK, serve(h, "/health/live").Code)

	rec := serve(h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	var body StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "test", body.Environment)
	assert.Equal(t, "healthy", body.Status)
}
