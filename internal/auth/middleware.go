package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/middleware"
)

// APIKeyHeader carries the caller's key
const APIKeyHeader = "X-API-Key"

// Context keys set on authenticated requests
const (
	ContextAuthType = "authType"
	ContextAPIKeyID = "apiKeyID"
)

// KeySet holds the digests of the accepted API keys.
type KeySet struct {
	digests [][sha256.Size]byte
}

// NewKeySet builds a KeySet from plain keys. Blank keys are ignored.
func NewKeySet(keys []string) *KeySet {
	ks := &KeySet{}
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			ks.digests = append(ks.digests, sha256.Sum256([]byte(k)))
		}
	}
	return ks
}

// Enabled reports whether any key is configured.
func (ks *KeySet) Enabled() bool {
	return ks != nil && len(ks.digests) > 0
}

// Validate checks apiKey against every configured key in constant time and
// returns a short identifier of the matching key for logs.
func (ks *KeySet) Validate(apiKey string) (string, error) {
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}
	digest := sha256.Sum256([]byte(apiKey))
	matched := 0
	for _, d := range ks.digests {
		matched |= subtle.ConstantTimeCompare(digest[:], d[:])
	}
	if matched != 1 {
		return "", ErrInvalidAPIKey
	}
	return hex.EncodeToString(digest[:4]), nil
}

// RequireAPIKey rejects requests without a valid X-API-Key header. With no
// keys configured every request passes.
func RequireAPIKey(keys *KeySet) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !keys.Enabled() {
			c.Next()
			return
		}

		keyID, err := keys.Validate(c.GetHeader(APIKeyHeader))
		if err != nil {
			logger.Log.Warn("Rejected request",
				zap.String("path", c.Request.URL.Path),
				zap.String("correlation_id", middleware.GetCorrelationID(c)),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":          err.Error(),
				"correlation_id": middleware.GetCorrelationID(c),
			})
			return
		}

		c.Set(ContextAuthType, "api_key")
		c.Set(ContextAPIKeyID, keyID)
		c.Next()
	}
}
