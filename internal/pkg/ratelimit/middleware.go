package ratelimit

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codetern/gotasks/internal/pkg/response"
)

// Middleware limits requests per client IP using the given limiter.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		allowed := limiter.Allow(key)
		remaining := limiter.Remaining(key)
		resetTime := limiter.ResetTime(key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetTime.Format(time.RFC3339))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(time.Until(resetTime).Seconds())+1))
			response.TooManyRequests(c, "Too many requests. Try again later.", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Next()
	}
}
