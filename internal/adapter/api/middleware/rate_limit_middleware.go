package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"rentmate/internal/infrastructure/ratelimit"
	"rentmate/pkg/errors"
	"rentmate/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles an action per client IP.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, retryAfter := m.limiter.Allow(c.RealIP(), action)
			if !allowed {
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Too many requests, retry in %.0f seconds", retryAfter.Seconds()),
				))
			}
			return next(c)
		}
	}
}
