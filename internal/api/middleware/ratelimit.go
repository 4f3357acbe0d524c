package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fintrack/operations-api/internal/api/metrics"
)

// Throttle is the interface the login rate limiter uses to count attempts.
type Throttle interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit bounds login attempts per client IP. When the backing store
// is unreachable the limiter fails open: availability over strictness for a
// best-effort brute-force defence.
func LoginRateLimit(throttle Throttle, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := throttle.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("login throttle unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.LoginThrottledTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}
			return next(c)
		}
	}
}
