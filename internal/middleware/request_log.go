package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/logger"
)

// maxLoggedBody caps how much of a request body ends up in the log.
const maxLoggedBody = 4096

// LogRequest logs every request at debug level, including its body.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if shouldSkipLogging(c.Request.URL.Path) {
			c.Next()
			return
		}

		bodyBytes, err := getRequestBody(c)
		if err != nil {
			logger.Log.Error("Failed to read request body",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			c.Next()
			return
		}
		if len(bodyBytes) > maxLoggedBody {
			bodyBytes = bodyBytes[:maxLoggedBody]
		}

		logger.Log.Debug("Request received",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.String("client_ip", c.ClientIP()),
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("body", string(bodyBytes)),
			zap.Time("timestamp", time.Now().UTC()),
		)

		c.Next()
	}
}

func shouldSkipLogging(path string) bool {
	return path == "/health" || path == "/metrics"
}

// getRequestBody reads the body and puts it back for the handlers.
func getRequestBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	return bodyBytes, nil
}
