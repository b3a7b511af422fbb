package ratelimit

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/azul/internal/pkg/response"
)

// Middleware creates a rate limiting middleware keyed by client IP
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return KeyedMiddleware(limiter, func(c *gin.Context) string { return c.ClientIP() })
}

// KeyedMiddleware creates a rate limiting middleware with custom key function
func KeyedMiddleware(limiter *RateLimiter, keyFunc func(c *gin.Context) string) gin.HandlerFunc {
	limit := strconv.Itoa(limiter.Limit())
	retryAfter := strconv.Itoa(int(limiter.Window().Seconds()))

	return func(c *gin.Context) {
		key := keyFunc(c)
		if key == "" {
			key = c.ClientIP()
		}

		allowed := limiter.Allow(key)
		resetTime := limiter.GetResetTime(key)

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Reset", resetTime.Format(time.RFC3339))

		if !allowed {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", retryAfter)
			response.TooManyRequests(c, "Rate limit exceeded. Try again later.", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.GetRemaining(key)))
		c.Next()
	}
}
