package handlers

import (
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metawedding/wedding-api/internal/services"
)

// NetworkHandler serves plain chain queries
type NetworkHandler struct {
	common *CommonServices
}

// NewNetworkHandler creates a new NetworkHandler instance
func NewNetworkHandler(common *CommonServices) *NetworkHandler {
	return &NetworkHandler{common: common}
}

// GasPriceResponse carries the suggested gas price in wei
type GasPriceResponse struct {
	Object   string `json:"object"`
	ChainID  int64  `json:"chain_id"`
	GasPrice string `json:"gas_price"`
}

// BlockHashResponse carries the hash of one block
type BlockHashResponse struct {
	Object      string `json:"object"`
	BlockNumber string `json:"block_number"`
	Hash        string `json:"hash"`
}

// GetGasPrice godoc
// @Summary      Get gas price
// @Description  Returns the gas price suggested by the node, in wei
// @Tags         chain
// @Produce      json
// @Success      200  {object}  GasPriceResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /chain/gas-price [get]
func (h *NetworkHandler) GetGasPrice(c *gin.Context) {
	price, err := h.common.chain.GetGasPrice(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to get gas price")
		return
	}

	sendSuccess(c, http.StatusOK, GasPriceResponse{
		Object:   "gas_price",
		ChainID:  h.common.config.Deployment.ChainID,
		GasPrice: price.String(),
	})
}

// GetBlockHash godoc
// @Summary      Get block hash
// @Description  Returns the hash of the block with the given number
// @Tags         chain
// @Produce      json
// @Param        number  path      string  true  "Block number"
// @Success      200     {object}  BlockHashResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /chain/blocks/{number}/hash [get]
func (h *NetworkHandler) GetBlockHash(c *gin.Context) {
	number, ok := new(big.Int).SetString(c.Param("number"), 10)
	if !ok {
		sendError(c, http.StatusBadRequest, "Invalid block number", services.ErrInvalidBlockNumber)
		return
	}

	hash, err := h.common.chain.GetBlockHash(c.Request.Context(), number)
	if err != nil {
		handleServiceError(c, err, "Failed to get block hash")
		return
	}

	sendSuccess(c, http.StatusOK, BlockHashResponse{
		Object:      "block",
		BlockNumber: number.String(),
		Hash:        hash,
	})
}
