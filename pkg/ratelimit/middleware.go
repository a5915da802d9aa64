package ratelimit

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Middleware applies the rate limiter to every request. When the limiter
// errors (Redis down), the request is allowed through rather than failing the
// whole API on a degraded cache.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.IsAllowed(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetTime, 10))

		if !result.Allowed {
			c.String(http.StatusTooManyRequests, "Too many requests. Please slow down and try again.")
			c.Abort()
			return
		}

		c.Next()
	}
}
