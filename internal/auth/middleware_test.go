package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestKeySet_Validate(t *testing.T) {
	ks := NewKeySet([]string{"alpha", " ", "beta "})
	require.True(t, ks.Enabled())

	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "first key", key: "alpha"},
		{name: "trimmed key", key: "beta"},
		{name: "missing", key: "", wantErr: ErrMissingAPIKey},
		{name: "unknown", key: "gamma", wantErr: ErrInvalidAPIKey},
		{name: "prefix", key: "alph", wantErr: ErrInvalidAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ks.Validate(tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, id, 8)
		})
	}

	assert.False(t, NewKeySet(nil).Enabled())
	assert.False(t, (*KeySet)(nil).Enabled())
}

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		header     string
		wantStatus int
	}{
		{name: "open when unconfigured", keys: nil, wantStatus: http.StatusOK},
		{name: "valid key", keys: []string{"secret"}, header: "secret", wantStatus: http.StatusOK},
		{name: "missing key", keys: []string{"secret"}, wantStatus: http.StatusUnauthorized},
		{name: "wrong key", keys: []string{"secret"}, header: "nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RequireAPIKey(NewKeySet(tt.keys)))
			r.POST("/agent", func(c *gin.Context) {
				if len(tt.keys) > 0 {
					assert.Equal(t, "api_key", c.GetString(ContextAuthType))
					assert.NotEmpty(t, c.GetString(ContextAPIKeyID))
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/agent", nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
