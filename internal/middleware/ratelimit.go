package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/ratelimiter"
)

// RateLimiter throttles requests per client.
type RateLimiter struct {
	limiter *ratelimiter.MapLimiter
	now     func() time.Time
}

// NewRateLimiter creates a per-client limiter allowing requestsPerSecond with the given burst.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: ratelimiter.New(requestsPerSecond, burst, 10*time.Minute),
		now:     time.Now,
	}
}

// getClientIdentifier keys on the client IP as resolved by gin. Forwarding
// headers only count when the peer is one of the engine's trusted proxies.
func getClientIdentifier(c *gin.Context) string {
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return fmt.Sprintf("ip:%s", clientIP)
}

// Middleware returns a gin handler that rejects clients over their budget with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		clientID := getClientIdentifier(c)
		if !rl.limiter.Allow(clientID, rl.now()) {
			logger.Log.Warn("Rate limit exceeded",
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)

			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":          "Too many requests. Please try again later.",
				"correlation_id": GetCorrelationID(c),
			})
			return
		}

		c.Next()
	}
}
