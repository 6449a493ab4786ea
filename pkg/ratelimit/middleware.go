// Package ratelimit throttles API callers with a fixed window per caller and path.
package ratelimit

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/finpet/finpet-api/internal/metrics"
	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	apphttp "github.com/finpet/finpet-api/pkg/app/http"
	"github.com/finpet/finpet-api/pkg/auth"
)

const keyPrefix = "rate_limit"

// Counter counts hits of key within a window.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetIn time.Duration, err error)
}

// Middleware rejects callers that exceed limit requests per window on a path.
// Callers are keyed by authenticated user id, so it must run after the auth
// middleware; requests without a user id are passed on uncounted. Counter
// failures let the request through.
func Middleware(counter Counter, limit int, window time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := auth.UserIDFromContext(r.Context())
			if !ok || userID == "" {
				next.ServeHTTP(w, r)
				return
			}
			key := keyPrefix + ":" + r.URL.Path + ":user:" + userID

			count, resetIn, err := counter.Hit(r.Context(), key, window)
			if err != nil {
				logger.Warn("rate limit check failed", zap.String("key", key), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				metrics.RateLimited.Inc()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(resetIn.Seconds()))))
				apphttp.DefaultErrorHandler(w, apperrors.TooManyRequestsError(nil, "rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
