package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and, on request, whether the node serves
// the configured chain
type HealthHandler struct {
	common *CommonServices
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(common *CommonServices) *HealthHandler {
	return &HealthHandler{common: common}
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status     string `json:"status"`
	Stage      string `json:"stage"`
	Deployment string `json:"deployment"`
	ChainID    int64  `json:"chain_id"`
}

// Health godoc
// @Summary      Health check
// @Description  Checks if the server is running. With deep=true the RPC node's chain id is verified too.
// @Tags         health
// @Produce      json
// @Param        deep  query     bool  false  "Verify the chain id"
// @Success      200   {object}  HealthResponse
// @Failure      503   {object}  ErrorResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	cfg := h.common.config
	if c.Query("deep") == "true" {
		if err := h.common.chain.VerifyChain(c.Request.Context()); err != nil {
			sendError(c, http.StatusServiceUnavailable, "Chain verification failed", err)
			return
		}
	}

	sendSuccess(c, http.StatusOK, HealthResponse{
		Status:     "ok",
		Stage:      cfg.Stage,
		Deployment: cfg.Deployment.Name,
		ChainID:    cfg.Deployment.ChainID,
	})
}
