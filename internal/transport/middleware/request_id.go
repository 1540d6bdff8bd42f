package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/jobtracker-backend/pkg/ctxutil"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader    = "X-Request-Id"
	maxRequestIDLength = 128
)

// RequestID reuses a sane incoming X-Request-Id or generates a new one, and
// echoes it in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validRequestID accepts non-empty printable ASCII up to maxRequestIDLength.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
