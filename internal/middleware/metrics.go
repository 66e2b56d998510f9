package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/metawedding/wedding-api/internal/metrics"
)

// Metrics records request counts and durations per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		metrics.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
