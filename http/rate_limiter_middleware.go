package http

import (
	"net"
	"net/http"

	"github.com/rs/zerolog"
)

// RateLimitMiddleware limits each client IP within scope. Routes sharing a scope share a bucket.
func RateLimitMiddleware(limiter *RateLimiter, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.Allow(bucketKey(scope, ip)) {
				zerolog.Ctx(r.Context()).Warn().Str("client", ip).Str("scope", scope).Msg("rate limit exceeded")
				writeError(w, r, http.StatusTooManyRequests, errRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
