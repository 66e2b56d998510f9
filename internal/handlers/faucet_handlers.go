package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/constants"
	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/ratelimiter"
	"github.com/metawedding/wedding-api/internal/services"
)

// faucetIdleTTL is the minimum time an unused recipient bucket is kept.
const faucetIdleTTL = time.Hour

// FaucetHandler funds recipients from the faucet contract, at most once per
// recipient per refill period
type FaucetHandler struct {
	common  *CommonServices
	limiter *ratelimiter.MapLimiter
	now     func() time.Time
}

// NewFaucetHandler creates a new FaucetHandler instance
func NewFaucetHandler(common *CommonServices) *FaucetHandler {
	cfg := common.config.Faucet
	idleTTL := faucetIdleTTL
	if cfg.RatePerSecond > 0 {
		if refill := time.Duration(float64(time.Second) / cfg.RatePerSecond); 2*refill > idleTTL {
			idleTTL = 2 * refill
		}
	}
	return &FaucetHandler{
		common:  common,
		limiter: ratelimiter.New(cfg.RatePerSecond, cfg.Burst, idleTTL),
		now:     time.Now,
	}
}

// Fund godoc
// @Summary      Fund an address from the faucet
// @Tags         faucet
// @Accept       json
// @Produce      json
// @Param        request  body      FaucetRequest  true   "Recipient"
// @Param        wait     query     bool           false  "Wait for the receipt"
// @Success      202      {object}  TransactionResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      429      {object}  ErrorResponse
// @Security     ApiKeyAuth
// @Router       /faucet [post]
func (h *FaucetHandler) Fund(c *gin.Context) {
	var req FaucetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	recipient, err := services.ValidateAddress(req.To)
	if err != nil {
		handleServiceError(c, err, "Invalid recipient")
		return
	}

	release, ok := h.limiter.Reserve(recipient.Hex(), h.now())
	if !ok {
		c.Header("Retry-After", retryAfter(h.common.config.Faucet.RatePerSecond))
		sendError(c, http.StatusTooManyRequests, "Faucet already used for this address, try again later", nil)
		return
	}

	hash, err := h.common.wedding.CallFaucet(c.Request.Context(), req.To)
	if err != nil {
		// nothing was sent, so the recipient keeps its allowance
		release()
		handleServiceError(c, err, "Failed to call faucet")
		return
	}

	logger.Log.Info("Faucet transaction submitted",
		zap.String("to", recipient.Hex()),
		zap.String("tx_hash", hash.Hex()),
	)
	respondTransaction(c, h.common, constants.MethodFaucet, hash)
}

// retryAfter returns the refill period of one token in whole seconds.
func retryAfter(ratePerSecond float64) string {
	if ratePerSecond <= 0 {
		return "60"
	}
	seconds := int(1/ratePerSecond + 0.5)
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}
