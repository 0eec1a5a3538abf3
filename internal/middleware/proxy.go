package middleware

import (
	"net"
	"net/http"
	"strings"
)

// TrustProxyMiddleware rewrites scheme, host and remote address from the
// X-Forwarded-* headers set by the reverse proxy in front of the service.
func TrustProxyMiddleware(next HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			r.URL.Scheme = proto
		}

		if host := r.Header.Get("X-Forwarded-Host"); host != "" {
			r.Host = host
		}

		if ip := clientIP(r.Header.Get("X-Forwarded-For")); ip != "" {
			r.RemoteAddr = net.JoinHostPort(ip, "0")
		}

		return next(w, r)
	}
}

// clientIP returns the first valid address of an X-Forwarded-For list.
func clientIP(forwardedFor string) string {
	first, _, _ := strings.Cut(forwardedFor, ",")
	first = strings.TrimSpace(first)
	if net.ParseIP(first) == nil {
		return ""
	}
	return first
}
