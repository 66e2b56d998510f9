package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCorrelationIDMiddleware(t *testing.T) {
	tests := []struct {
		name                 string
		requestCorrelationID string
		expectNewID          bool
	}{
		{name: "new id generated when header not present", expectNewID: true},
		{name: "existing id preserved", requestCorrelationID: "test-correlation-id-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CorrelationIDMiddleware())

			var fromCtx string
			router.GET("/test", func(c *gin.Context) {
				fromCtx = logger.CorrelationID(c.Request.Context())
				c.String(http.StatusOK, GetCorrelationID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestCorrelationID != "" {
				req.Header.Set(CorrelationIDHeader, tt.requestCorrelationID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			header := w.Header().Get(CorrelationIDHeader)
			assert.NotEmpty(t, header)
			assert.Equal(t, header, w.Body.String())
			assert.Equal(t, header, fromCtx)
			if !tt.expectNewID {
				assert.Equal(t, tt.requestCorrelationID, header)
			}
		})
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	fixed := time.Unix(1_700_000_000, 0)
	rl.now = func() time.Time { return fixed }

	router := gin.New()
	require.NoError(t, router.SetTrustedProxies(nil))
	router.Use(rl.Middleware())
	router.GET("/api/v1/chain/gas-price", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(path, ip string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = ip + ":40000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("/api/v1/chain/gas-price", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("/api/v1/chain/gas-price", "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("/api/v1/chain/gas-price", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("/api/v1/chain/gas-price", "10.0.0.2"))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do("/health", "10.0.0.1"))
	}
}

func TestRateLimiter_ForwardedFor(t *testing.T) {
	tests := []struct {
		name           string
		trustedProxies []string
		wantSecond     int
	}{
		{name: "spoofed header from untrusted peer", trustedProxies: nil, wantSecond: http.StatusTooManyRequests},
		{name: "header from trusted proxy", trustedProxies: []string{"192.168.0.0/16"}, wantSecond: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(1, 1)
			fixed := time.Unix(1_700_000_000, 0)
			rl.now = func() time.Time { return fixed }

			router := gin.New()
			require.NoError(t, router.SetTrustedProxies(tt.trustedProxies))
			router.Use(rl.Middleware())
			router.GET("/api/v1/chain/gas-price", func(c *gin.Context) { c.Status(http.StatusOK) })

			do := func(forwardedFor string) int {
				req := httptest.NewRequest(http.MethodGet, "/api/v1/chain/gas-price", nil)
				req.RemoteAddr = "192.168.1.10:40000"
				req.Header.Set("X-Forwarded-For", forwardedFor)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				return w.Code
			}

			assert.Equal(t, http.StatusOK, do("203.0.113.1"))
			assert.Equal(t, tt.wantSecond, do("203.0.113.2"))
		})
	}
}

func TestMetrics(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/wallets/:address/balance", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/wallets/:address/balance", "418")
	before := testutil.ToFloat64(counter)

	req := httptest.NewRequest(http.MethodGet, "/wallets/0xabc/balance", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestLogRequest_KeepsBody(t *testing.T) {
	router := gin.New()
	router.Use(LogRequest())

	var got string
	router.POST("/echo", func(c *gin.Context) {
		var body struct {
			To string `json:"to"`
		}
		require.NoError(t, c.ShouldBindJSON(&body))
		got = body.To
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"to":"0xabc"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "0xabc", got)
}
