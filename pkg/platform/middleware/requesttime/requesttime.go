// Package requesttime pins one "now" per HTTP request, so a write and the
// audit event it emits carry the same timestamp.
package requesttime

import (
	"net/http"
	"time"

	"matchmaker/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request and
// stores it in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
