package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpclient "github.com/metawedding/wedding-api/internal/client/http"
	"github.com/metawedding/wedding-api/internal/client/ipfs"
	"github.com/metawedding/wedding-api/internal/config"
	"github.com/metawedding/wedding-api/internal/contract"
	"github.com/metawedding/wedding-api/internal/interfaces"
	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/middleware"
	"github.com/metawedding/wedding-api/internal/services"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	chain   interfaces.ChainService
	wedding interfaces.WeddingService
	meta    interfaces.MetadataFetcher
	config  *config.Config
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(chain interfaces.ChainService, wedding interfaces.WeddingService, meta interfaces.MetadataFetcher, cfg *config.Config) *CommonServices {
	return &CommonServices{
		chain:   chain,
		wedding: wedding,
		meta:    meta,
		config:  cfg,
	}
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", middleware.GetCorrelationID(c)),
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Log.Error(message, fields...)
	} else {
		logger.Log.Warn(message, fields...)
	}
	c.JSON(statusCode, ErrorResponse{Error: message, CorrelationID: middleware.GetCorrelationID(c)})
}

// handleServiceError maps service errors to HTTP status codes
func handleServiceError(c *gin.Context, err error, message string) {
	var (
		invalidAddress *services.InvalidAddressError
		unsuccessful   *services.UnsuccessfulReadError
		parseErr       *services.StructParseError
		gatewayErr     *httpclient.HTTPError
	)

	switch {
	case errors.As(err, &invalidAddress):
		sendError(c, http.StatusBadRequest, invalidAddress.Error(), err)
	case errors.Is(err, services.ErrInvalidBlockNumber), errors.Is(err, ipfs.ErrNotIPFSURL):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.As(err, &unsuccessful), errors.As(err, &parseErr),
		errors.As(err, &gatewayErr), errors.Is(err, ipfs.ErrInvalidMetadata):
		sendError(c, http.StatusBadGateway, message, err)
	case errors.Is(err, contract.ErrReadOnlyBinding):
		sendError(c, http.StatusServiceUnavailable, "Signing account is not configured", err)
	default:
		sendError(c, http.StatusInternalServerError, message, err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}
