package server

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/metawedding/wedding-api/internal/auth"
	"github.com/metawedding/wedding-api/internal/config"
	"github.com/metawedding/wedding-api/internal/constants"
	"github.com/metawedding/wedding-api/internal/middleware"
	"github.com/metawedding/wedding-api/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(t *testing.T) (*gin.Engine, *mocks.MockChainService, *mocks.MockWeddingService) {
	t.Helper()
	t.Setenv("GIN_MODE", gin.ReleaseMode)

	cfg := config.Default()
	cfg.Deployment = config.Deployment{
		Name:            constants.DeploymentTestnet,
		ChainID:         constants.ChainIDPolygonTestnet,
		WeddingContract: "0x1111111111111111111111111111111111111111",
		FaucetContract:  "0x2222222222222222222222222222222222222222",
	}

	chain := mocks.NewMockChainServiceForTest(t)
	wedding := mocks.NewMockWeddingServiceForTest(t)
	meta := mocks.NewMockMetadataFetcherForTest(t)
	return NewRouter(chain, wedding, meta, &cfg), chain, wedding
}

func TestRouter_Routes(t *testing.T) {
	router, chain, wedding := testRouter(t)

	chain.EXPECT().GetGasPrice(gomock.Any()).Return(big.NewInt(1), nil)
	chain.EXPECT().GetBalance(gomock.Any(), "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed").Return(0.5, nil)
	wedding.EXPECT().RequestDivorceData().Return("0x01", nil)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/swagger/index.html", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{http.MethodGet, "/api/v1/chain/gas-price", http.StatusOK},
		{http.MethodGet, "/api/v1/wallets/0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed/balance", http.StatusOK},
		{http.MethodPost, "/api/v1/calldata/request-divorce", http.StatusOK},
		{http.MethodGet, "/api/v1/meta", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.CorrelationIDHeader))
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example, https://admin.example")
	router, _, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/faucet", nil)
	req.Header.Set("Origin", "https://admin.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://admin.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_SwaggerDoc(t *testing.T) {
	router, _, _ := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/wallets/{address}/marriage"`)
	assert.Contains(t, w.Body.String(), `"ApiKeyAuth"`)
}

func TestConfigureTrustedProxies(t *testing.T) {
	tests := []struct {
		name     string
		proxies  string
		platform string
		header   string
		value    string
		want     string
	}{
		{name: "nothing trusted by default", header: "X-Forwarded-For", value: "203.0.113.7", want: "10.1.2.3"},
		{name: "trusted proxy", proxies: "10.0.0.0/8", header: "X-Forwarded-For", value: "203.0.113.7", want: "203.0.113.7"},
		{name: "invalid list trusts none", proxies: "not-a-cidr", header: "X-Forwarded-For", value: "203.0.113.7", want: "10.1.2.3"},
		{name: "platform header", platform: "CF-Connecting-IP", header: "CF-Connecting-IP", value: "198.51.100.4", want: "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TRUSTED_PROXIES", tt.proxies)
			t.Setenv("TRUSTED_PLATFORM", tt.platform)

			router := gin.New()
			configureTrustedProxies(router)
			router.GET("/ip", func(c *gin.Context) { c.String(http.StatusOK, c.ClientIP()) })

			req := httptest.NewRequest(http.MethodGet, "/ip", nil)
			req.RemoteAddr = "10.1.2.3:40000"
			req.Header.Set(tt.header, tt.value)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestEnvList(t *testing.T) {
	t.Setenv("TEST_LIST", " a, b ,c")
	assert.Equal(t, []string{"a", "b", "c"}, envList("TEST_LIST", nil))
	assert.Equal(t, []string{"x"}, envList("TEST_LIST_UNSET", []string{"x"}))
}

func TestRouter_AgentRoutesRequireAPIKey(t *testing.T) {
	t.Setenv("GIN_MODE", gin.ReleaseMode)
	cfg := config.Default()
	cfg.APIKeys = []string{"agent-secret"}

	chain := mocks.NewMockChainServiceForTest(t)
	wedding := mocks.NewMockWeddingServiceForTest(t)
	router := NewRouter(chain, wedding, mocks.NewMockMetadataFetcherForTest(t), &cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/agent/request-divorce", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/faucet", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	wedding.EXPECT().RequestDivorceAgent(gomock.Any()).Return(common.HexToHash("0xabc"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/agent/request-divorce", nil)
	req.Header.Set(auth.APIKeyHeader, "agent-secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Code)
}
