package request

import (
	"net/http"

	"matchmaker/pkg/platform/httputil"
)

// BodyLimit caps request bodies at maxBytes. Requests that declare a larger
// Content-Length are refused with 413 before the handler runs; bodies that
// lie about their length fail on read through http.MaxBytesReader.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				httputil.WriteJSON(w, http.StatusRequestEntityTooLarge, map[string]string{
					"error":             "payload_too_large",
					"error_description": "request body exceeds limit",
				})
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
