package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aurajewels/storefront-api/libs/go/logger"
	"github.com/aurajewels/storefront-api/libs/go/middleware"
	"github.com/aurajewels/storefront-api/libs/go/types/api/responses"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	// pinger is the database pool, used by readiness checks
	pinger Pinger
	logger *zap.Logger
}

// ErrorResponse represents a standard error response
type ErrorResponse = responses.ErrorResponse

// SuccessResponse represents a standard success response
type SuccessResponse = responses.SuccessResponse

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	Pinger Pinger // usually the *pgxpool.Pool
	Logger *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices with interface dependencies
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	return &CommonServices{
		pinger: config.Pinger,
		logger: config.Logger,
	}
}

// Ping checks the database when a pinger was configured
func (s *CommonServices) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return errors.New("database pinger not configured")
	}
	return s.pinger.Ping(ctx)
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	log := middleware.LogWithCorrelationID(c.Request.Context())
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Debug(message, fields...)
	}

	// Include correlation ID in error response for debugging
	response := struct {
		Error         string `json:"error"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}{
		Error:         message,
		CorrelationID: correlationID,
	}

	c.JSON(statusCode, response)
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}
