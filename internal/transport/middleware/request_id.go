package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/ustwo-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds ids accepted from callers; longer ones are replaced.
const maxRequestIDLen = 128

// RequestID returns middleware that reuses the caller's X-Request-Id or
// generates a UUID, stores it in the context and echoes it in the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
