package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aurajewels/storefront-api/libs/go/types/api/responses"
)

const readinessTimeout = 2 * time.Second

type HealthHandler struct {
	common *CommonServices
}

func NewHealthHandler(common *CommonServices) *HealthHandler {
	return &HealthHandler{common: common}
}

// Use types from the centralized packages
type HealthResponse = responses.HealthResponse

// Health godoc
// @Summary Check the health of the server
// @Description Returns a simple "ok" status
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// Ready godoc
// @Summary Check that the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} ErrorResponse
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.common == nil {
		sendError(c, http.StatusServiceUnavailable, "database unavailable", nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := h.common.Ping(ctx); err != nil {
		sendError(c, http.StatusServiceUnavailable, "database unavailable", err)
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
