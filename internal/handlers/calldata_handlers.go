package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metawedding/wedding-api/internal/constants"
)

// CallDataHandler encodes wedding calls for the user's own wallet to send
type CallDataHandler struct {
	common *CommonServices
}

// NewCallDataHandler creates a new CallDataHandler instance
func NewCallDataHandler(common *CommonServices) *CallDataHandler {
	return &CallDataHandler{common: common}
}

// Propose godoc
// @Summary      Encode propose
// @Tags         calldata
// @Accept       json
// @Produce      json
// @Param        request  body      PropositionRequest  true  "Proposition"
// @Success      200      {object}  CallDataResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /calldata/propose [post]
func (h *CallDataHandler) Propose(c *gin.Context) {
	h.encodeProposition(c, constants.MethodPropose, h.common.wedding.ProposeData)
}

// UpdateProposition godoc
// @Summary      Encode updateProposition
// @Tags         calldata
// @Accept       json
// @Produce      json
// @Param        request  body      PropositionRequest  true  "Proposition"
// @Success      200      {object}  CallDataResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /calldata/update-proposition [post]
func (h *CallDataHandler) UpdateProposition(c *gin.Context) {
	h.encodeProposition(c, constants.MethodUpdateProposition, h.common.wedding.UpdatePropositionData)
}

// AcceptProposition godoc
// @Summary      Encode acceptProposition
// @Description  meta_url and cond_data are sent as sha2-256 digests
// @Tags         calldata
// @Accept       json
// @Produce      json
// @Param        request  body      PropositionRequest  true  "Proposition"
// @Success      200      {object}  CallDataResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /calldata/accept-proposition [post]
func (h *CallDataHandler) AcceptProposition(c *gin.Context) {
	h.encodeProposition(c, constants.MethodAcceptProposition, h.common.wedding.AcceptPropositionData)
}

// RequestDivorce godoc
// @Summary      Encode requestDivorce
// @Tags         calldata
// @Produce      json
// @Success      200  {object}  CallDataResponse
// @Router       /calldata/request-divorce [post]
func (h *CallDataHandler) RequestDivorce(c *gin.Context) {
	h.encode(c, constants.MethodRequestDivorce, h.common.wedding.RequestDivorceData)
}

// ConfirmDivorce godoc
// @Summary      Encode confirmDivorce
// @Tags         calldata
// @Produce      json
// @Success      200  {object}  CallDataResponse
// @Router       /calldata/confirm-divorce [post]
func (h *CallDataHandler) ConfirmDivorce(c *gin.Context) {
	h.encode(c, constants.MethodConfirmDivorce, h.common.wedding.ConfirmDivorceData)
}

func (h *CallDataHandler) encodeProposition(c *gin.Context, method string, encode func(to, metaURL, condData string) (string, error)) {
	var req PropositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.encode(c, method, func() (string, error) {
		return encode(req.To, req.MetaURL, req.CondData)
	})
}

func (h *CallDataHandler) encode(c *gin.Context, method string, encode func() (string, error)) {
	data, err := encode()
	if err != nil {
		handleServiceError(c, err, "Failed to encode call data")
		return
	}

	sendSuccess(c, http.StatusOK, CallDataResponse{
		Object:  "call_data",
		Method:  method,
		ChainID: h.common.config.Deployment.ChainID,
		To:      h.common.config.Deployment.WeddingContract,
		Data:    data,
	})
}
