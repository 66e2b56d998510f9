package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/types/business"
)

// WalletHandler serves the per-address views: balance, marriage and propositions
type WalletHandler struct {
	common *CommonServices
}

// NewWalletHandler creates a new WalletHandler instance
func NewWalletHandler(common *CommonServices) *WalletHandler {
	return &WalletHandler{common: common}
}

// BalanceResponse carries the ether balance of an address
type BalanceResponse struct {
	Object  string  `json:"object"`
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}

// MarriageResponse wraps the current marriage of an address. Marriage is
// omitted when the address is not married.
type MarriageResponse struct {
	Object  string             `json:"object"`
	Address string             `json:"address"`
	Married bool               `json:"married"`
	MetaCID string             `json:"meta_cid,omitempty"`
	Data    *business.Marriage `json:"marriage,omitempty"`
}

// PropositionResponse is one proposition with its parsed meta CID
type PropositionResponse struct {
	business.Proposal
	MetaCID string `json:"meta_cid,omitempty"`
}

// GetBalance godoc
// @Summary      Get balance
// @Description  Returns the ether balance of an address, rounded to 6 decimals
// @Tags         wallets
// @Produce      json
// @Param        address  path      string  true  "Wallet address"
// @Success      200      {object}  BalanceResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /wallets/{address}/balance [get]
func (h *WalletHandler) GetBalance(c *gin.Context) {
	address := c.Param("address")

	balance, err := h.common.chain.GetBalance(c.Request.Context(), address)
	if err != nil {
		handleServiceError(c, err, "Failed to get balance")
		return
	}

	sendSuccess(c, http.StatusOK, BalanceResponse{
		Object:  "balance",
		Address: address,
		Balance: balance,
	})
}

// GetMarriage godoc
// @Summary      Get current marriage
// @Description  Returns the marriage the address belongs to
// @Tags         wallets
// @Produce      json
// @Param        address  path      string  true  "Wallet address"
// @Success      200      {object}  MarriageResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /wallets/{address}/marriage [get]
func (h *WalletHandler) GetMarriage(c *gin.Context) {
	address := c.Param("address")

	marriage, err := h.common.wedding.GetCurrentMarriage(c.Request.Context(), address)
	if err != nil {
		handleServiceError(c, err, "Failed to get current marriage")
		return
	}

	resp := MarriageResponse{Object: "marriage", Address: address}
	if !marriage.IsEmpty() {
		resp.Married = true
		resp.Data = &marriage
		if id, ok := marriage.MetaCID(); ok {
			resp.MetaCID = id.String()
		}
	}
	sendSuccess(c, http.StatusOK, resp)
}

// GetIncomingPropositions godoc
// @Summary      List incoming propositions
// @Tags         wallets
// @Produce      json
// @Param        address  path      string  true  "Wallet address"
// @Success      200      {array}   PropositionResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /wallets/{address}/propositions/incoming [get]
func (h *WalletHandler) GetIncomingPropositions(c *gin.Context) {
	address := c.Param("address")

	proposals, err := h.common.wedding.GetIncomingPropositions(c.Request.Context(), address)
	if err != nil {
		handleServiceError(c, err, "Failed to get incoming propositions")
		return
	}
	sendList(c, toPropositionResponses(proposals))
}

// GetOutgoingPropositions godoc
// @Summary      List outgoing propositions
// @Tags         wallets
// @Produce      json
// @Param        address  path      string  true  "Wallet address"
// @Success      200      {array}   PropositionResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /wallets/{address}/propositions/outgoing [get]
func (h *WalletHandler) GetOutgoingPropositions(c *gin.Context) {
	address := c.Param("address")

	proposals, err := h.common.wedding.GetOutgoingPropositions(c.Request.Context(), address)
	if err != nil {
		handleServiceError(c, err, "Failed to get outgoing propositions")
		return
	}
	sendList(c, toPropositionResponses(proposals))
}

func toPropositionResponses(proposals []business.Proposal) []PropositionResponse {
	out := make([]PropositionResponse, 0, len(proposals))
	for _, p := range proposals {
		resp := PropositionResponse{Proposal: p}
		if id, ok := p.MetaCID(); ok {
			resp.MetaCID = id.String()
		} else if p.MetaURL != "" {
			logger.Log.Debug("Proposition meta url is not an ipfs url", zap.String("meta_url", p.MetaURL))
		}
		out = append(out, resp)
	}
	return out
}
