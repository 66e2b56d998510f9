package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/metawedding/wedding-api/docs" // generated by swag init

	"github.com/metawedding/wedding-api/internal/auth"
	"github.com/metawedding/wedding-api/internal/config"
	"github.com/metawedding/wedding-api/internal/handlers"
	"github.com/metawedding/wedding-api/internal/interfaces"
	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/middleware"
)

// Default per-client budget of the API as a whole. The faucet has its own
// per-recipient limit on top of this.
const (
	apiRequestsPerSecond = 10
	apiBurst             = 20
)

// routeHandlers are the handlers behind the routes
type routeHandlers struct {
	health   *handlers.HealthHandler
	network  *handlers.NetworkHandler
	wallet   *handlers.WalletHandler
	callData *handlers.CallDataHandler
	agent    *handlers.AgentHandler
	faucet   *handlers.FaucetHandler
	meta     *handlers.MetaHandler
}

func initializeHandlers(chain interfaces.ChainService, wedding interfaces.WeddingService, meta interfaces.MetadataFetcher, cfg *config.Config) routeHandlers {
	commonServices := handlers.NewCommonServices(chain, wedding, meta, cfg)

	return routeHandlers{
		health:   handlers.NewHealthHandler(commonServices),
		network:  handlers.NewNetworkHandler(commonServices),
		wallet:   handlers.NewWalletHandler(commonServices),
		callData: handlers.NewCallDataHandler(commonServices),
		agent:    handlers.NewAgentHandler(commonServices),
		faucet:   handlers.NewFaucetHandler(commonServices),
		meta:     handlers.NewMetaHandler(commonServices),
	}
}

// NewRouter builds the gin engine with middleware and every route registered.
func NewRouter(chain interfaces.ChainService, wedding interfaces.WeddingService, meta interfaces.MetadataFetcher, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	configureTrustedProxies(router)
	InitializeRoutes(router, chain, wedding, meta, cfg)
	return router
}

// InitializeRoutes registers middleware and routes on router.
func InitializeRoutes(router *gin.Engine, chain interfaces.ChainService, wedding interfaces.WeddingService, meta interfaces.MetadataFetcher, cfg *config.Config) {
	h := initializeHandlers(chain, wedding, meta, cfg)

	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.Metrics())

	// if we are not in production, log the request body
	if os.Getenv("GIN_MODE") != gin.ReleaseMode {
		router.Use(middleware.LogRequest())
	}

	router.Use(middleware.NewRateLimiter(apiRequestsPerSecond, apiBurst).Middleware())

	router.GET("/health", h.health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireKey := auth.RequireAPIKey(auth.NewKeySet(cfg.APIKeys))

	v1 := router.Group("/api/v1")
	{
		chainGroup := v1.Group("/chain")
		{
			chainGroup.GET("/gas-price", h.network.GetGasPrice)
			chainGroup.GET("/blocks/:number/hash", h.network.GetBlockHash)
		}

		wallets := v1.Group("/wallets/:address")
		{
			wallets.GET("/balance", h.wallet.GetBalance)
			wallets.GET("/marriage", h.wallet.GetMarriage)
			wallets.GET("/propositions/incoming", h.wallet.GetIncomingPropositions)
			wallets.GET("/propositions/outgoing", h.wallet.GetOutgoingPropositions)
		}

		callData := v1.Group("/calldata")
		{
			callData.POST("/propose", h.callData.Propose)
			callData.POST("/update-proposition", h.callData.UpdateProposition)
			callData.POST("/accept-proposition", h.callData.AcceptProposition)
			callData.POST("/request-divorce", h.callData.RequestDivorce)
			callData.POST("/confirm-divorce", h.callData.ConfirmDivorce)
		}

		agent := v1.Group("/agent", requireKey)
		{
			agent.POST("/propose", h.agent.Propose)
			agent.POST("/update-proposition", h.agent.UpdateProposition)
			agent.POST("/accept-proposition", h.agent.AcceptProposition)
			agent.POST("/request-divorce", h.agent.RequestDivorce)
			agent.POST("/confirm-divorce", h.agent.ConfirmDivorce)
		}

		v1.POST("/faucet", requireKey, h.faucet.Fund)
		v1.GET("/meta", h.meta.GetMetadata)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{
			Error:         "Not found",
			CorrelationID: middleware.GetCorrelationID(c),
		})
	})
}

// configureTrustedProxies limits which peers may set X-Forwarded-For and
// X-Real-IP. Nothing is trusted unless TRUSTED_PROXIES lists addresses or
// CIDRs. TRUSTED_PLATFORM names a header set by the edge (for example
// CF-Connecting-IP) that carries the client IP instead.
func configureTrustedProxies(router *gin.Engine) {
	if err := router.SetTrustedProxies(envList("TRUSTED_PROXIES", nil)); err != nil {
		logger.Error("Invalid TRUSTED_PROXIES, trusting no proxies", zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
	router.TrustedPlatform = os.Getenv("TRUSTED_PLATFORM")
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = envList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"})
	corsConfig.AllowHeaders = envList("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader, auth.APIKeyHeader})
	corsConfig.ExposeHeaders = envList("CORS_EXPOSED_HEADERS", []string{middleware.CorrelationIDHeader, "Retry-After"})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

// envList splits a comma separated variable, or returns def when it is unset.
func envList(key string, def []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	items := strings.Split(raw, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}
