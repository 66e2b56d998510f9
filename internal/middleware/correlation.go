package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/logger"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	correlationIDKey    = "correlationID"
)

// CorrelationIDMiddleware ensures every request has a correlation ID.
// An incoming X-Correlation-ID header is reused, otherwise a uuid is generated.
func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.New().String()
		}

		c.Set(correlationIDKey, correlationID)
		c.Header(CorrelationIDHeader, correlationID)
		c.Request = c.Request.WithContext(logger.WithCorrelationID(c.Request.Context(), correlationID))

		logger.FromContext(c.Request.Context(), nil).Debug("Request received",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
		)

		c.Next()
	}
}

// GetCorrelationID retrieves the correlation ID from the gin context.
func GetCorrelationID(c *gin.Context) string {
	if id, exists := c.Get(correlationIDKey); exists {
		if correlationID, ok := id.(string); ok {
			return correlationID
		}
	}
	return ""
}
