package handlers

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/constants"
	"github.com/metawedding/wedding-api/internal/logger"
)

// AgentHandler submits wedding transactions signed and paid for by the agent account
type AgentHandler struct {
	common *CommonServices
}

// NewAgentHandler creates a new AgentHandler instance
func NewAgentHandler(common *CommonServices) *AgentHandler {
	return &AgentHandler{common: common}
}

// Propose godoc
// @Summary      Propose through the agent
// @Tags         agent
// @Accept       json
// @Produce      json
// @Param        request  body      PropositionRequest  true   "Proposition"
// @Param        wait     query     bool                false  "Wait for the receipt"
// @Success      202      {object}  TransactionResponse
// @Success      200      {object}  TransactionResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      503      {object}  ErrorResponse
// @Security     ApiKeyAuth
// @Router       /agent/propose [post]
func (h *AgentHandler) Propose(c *gin.Context) {
	h.submitProposition(c, constants.MethodPropose, h.common.wedding.ProposeAgent)
}

// UpdateProposition godoc
// @Summary      Update a proposition through the agent
// @Tags         agent
// @Accept       json
// @Produce      json
// @Param        request  body      PropositionRequest  true   "Proposition"
// @Param        wait     query     bool                false  "Wait for the receipt"
// @Success      202      {object}  TransactionResponse
// @Failure      400      {object}  ErrorResponse
// @Security     ApiKeyAuth
// @Router       /agent/update-proposition [post]
func (h *AgentHandler) UpdateProposition(c *gin.Context) {
	h.submitProposition(c, constants.MethodUpdateProposition, h.common.wedding.UpdatePropositionAgent)
}

// AcceptProposition godoc
// @Summary      Accept a proposition through the agent
// @Tags         agent
// @Accept       json
// @Produce      json
// @Param        request  body      PropositionRequest  true   "Proposition"
// @Param        wait     query     bool                false  "Wait for the receipt"
// @Success      202      {object}  TransactionResponse
// @Failure      400      {object}  ErrorResponse
// @Security     ApiKeyAuth
// @Router       /agent/accept-proposition [post]
func (h *AgentHandler) AcceptProposition(c *gin.Context) {
	h.submitProposition(c, constants.MethodAcceptProposition, h.common.wedding.AcceptPropositionAgent)
}

// RequestDivorce godoc
// @Summary      Request a divorce through the agent
// @Tags         agent
// @Produce      json
// @Param        wait  query     bool  false  "Wait for the receipt"
// @Success      202   {object}  TransactionResponse
// @Security     ApiKeyAuth
// @Router       /agent/request-divorce [post]
func (h *AgentHandler) RequestDivorce(c *gin.Context) {
	h.submit(c, constants.MethodRequestDivorce, h.common.wedding.RequestDivorceAgent)
}

// ConfirmDivorce godoc
// @Summary      Confirm a divorce through the agent
// @Tags         agent
// @Produce      json
// @Param        wait  query     bool  false  "Wait for the receipt"
// @Success      202   {object}  TransactionResponse
// @Security     ApiKeyAuth
// @Router       /agent/confirm-divorce [post]
func (h *AgentHandler) ConfirmDivorce(c *gin.Context) {
	h.submit(c, constants.MethodConfirmDivorce, h.common.wedding.ConfirmDivorceAgent)
}

func (h *AgentHandler) submitProposition(c *gin.Context, method string, write func(ctx context.Context, to, metaURL, condData string) (common.Hash, error)) {
	var req PropositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.submit(c, method, func(ctx context.Context) (common.Hash, error) {
		return write(ctx, req.To, req.MetaURL, req.CondData)
	})
}

func (h *AgentHandler) submit(c *gin.Context, method string, write func(ctx context.Context) (common.Hash, error)) {
	hash, err := write(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to submit "+method)
		return
	}

	logger.Log.Info("Agent transaction submitted",
		zap.String("method", method),
		zap.String("tx_hash", hash.Hex()),
	)
	respondTransaction(c, h.common, method, hash)
}

// respondTransaction answers 202 with the hash, or 200 with the receipt when
// the request has wait=true.
func respondTransaction(c *gin.Context, cs *CommonServices, method string, hash common.Hash) {
	resp := TransactionResponse{
		Object:  "transaction",
		Method:  method,
		ChainID: cs.config.Deployment.ChainID,
		TxHash:  hash.Hex(),
	}

	if c.Query("wait") != "true" {
		sendSuccess(c, http.StatusAccepted, resp)
		return
	}

	receipt, err := cs.chain.WaitForReceipt(c.Request.Context(), hash)
	if err != nil {
		handleServiceError(c, err, "Failed to wait for receipt of "+hash.Hex())
		return
	}
	resp.Receipt = receipt
	sendSuccess(c, http.StatusOK, resp)
}
