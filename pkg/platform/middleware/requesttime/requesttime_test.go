package requesttime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"matchmaker/pkg/requestcontext"
)

func TestMiddleware_SetsTimeInContext(t *testing.T) {
	var (
		captured time.Time
		ok       bool
	)
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, ok = requestcontext.Time(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	before := time.Now()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/catalog", nil))
	after := time.Now()

	assert.True(t, ok)
	assert.False(t, captured.Before(before))
	assert.False(t, captured.After(after))
}

func TestTimeUnset(t *testing.T) {
	_, ok := requestcontext.Time(context.Background())
	assert.False(t, ok)
}
