package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/catalog-editor/internal/errors"
	"github.com/aaravmahajanofficial/catalog-editor/internal/ratelimit"
	"github.com/aaravmahajanofficial/catalog-editor/internal/utils/response"
)

// RateLimit throttles an authenticated route per user. Limiter failures let
// the request through.
func RateLimit(limiter ratelimit.Limiter) func(http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			logger := LoggerFromContext(r.Context())

			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				response.Error(w, errors.UnauthorizedError("Authentication required"))
				return
			}

			allowed, remaining, retryAfter, err := limiter.Allow(r.Context(), claims.UserID.String())
			if err != nil {
				logger.Error("Rate limit check failed", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				logger.Warn("Too many submissions", slog.Int("retryAfter", retryAfter))
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				response.Error(w, errors.ResourceExhaustedError("Too many submissions, please try again later"))
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			next.ServeHTTP(w, r)
		}
	}
}
