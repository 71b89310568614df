package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lostfound/community-api/internal/api/metrics"
)

// Limiter is the attempt counter behind RateLimit (Redis in production).
type Limiter interface {
	Allow(ctx context.Context, scope, subject string) (bool, error)
}

// RateLimit throttles an endpoint per client IP. A limiter failure fails
// open: throttling is protection, not a dependency.
func RateLimit(limiter Limiter, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), scope, c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
