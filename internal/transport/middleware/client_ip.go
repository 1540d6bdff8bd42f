package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/jobtracker-backend/pkg/ctxutil"
)

// ClientIP resolves the caller address once per request and stores it in
// the context for the access log and the rate limiter. With trustProxy set,
// the left-most X-Forwarded-For entry wins over RemoteAddr; enable it only
// behind a proxy that overwrites the header.
func ClientIP(trustProxy bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := remoteHost(r.RemoteAddr)
			if trustProxy {
				if fwd := forwardedFor(r.Header.Get("X-Forwarded-For")); fwd != "" {
					ip = fwd
				}
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientIP(r.Context(), ip)))
		})
	}
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

func forwardedFor(header string) string {
	first, _, _ := strings.Cut(header, ",")
	first = strings.TrimSpace(first)
	if net.ParseIP(first) == nil {
		return ""
	}
	return first
}

// clientKey is the address ClientIP stored, falling back to RemoteAddr when
// the middleware did not run.
func clientKey(r *http.Request) string {
	if ip := ctxutil.ClientIPFromCtx(r.Context()); ip != "" {
		return ip
	}
	return remoteHost(r.RemoteAddr)
}
