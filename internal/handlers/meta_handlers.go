package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MetaHandler resolves proposition and marriage metadata
type MetaHandler struct {
	common *CommonServices
}

// NewMetaHandler creates a new MetaHandler instance
func NewMetaHandler(common *CommonServices) *MetaHandler {
	return &MetaHandler{common: common}
}

// MetaResponse wraps the JSON document behind an ipfs:// meta URL
type MetaResponse struct {
	Object  string          `json:"object"`
	MetaURL string          `json:"meta_url"`
	Data    json.RawMessage `json:"data"`
}

// GetMetadata godoc
// @Summary      Resolve metadata
// @Description  Fetches the JSON document an ipfs:// meta URL points to through the configured gateway
// @Tags         meta
// @Produce      json
// @Param        url  query     string  true  "ipfs:// meta URL"
// @Success      200  {object}  MetaResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /meta [get]
func (h *MetaHandler) GetMetadata(c *gin.Context) {
	metaURL := c.Query("url")
	if metaURL == "" {
		sendError(c, http.StatusBadRequest, "url query parameter is required", nil)
		return
	}

	data, err := h.common.meta.FetchMetadata(c.Request.Context(), metaURL)
	if err != nil {
		handleServiceError(c, err, "Failed to fetch metadata")
		return
	}

	sendSuccess(c, http.StatusOK, MetaResponse{
		Object:  "meta",
		MetaURL: metaURL,
		Data:    data,
	})
}
