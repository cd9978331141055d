package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newsverify/api-backend/internal/models"
	"github.com/newsverify/api-backend/internal/services"
)

// HealthHandler handles the readiness endpoint
type HealthHandler struct {
	healthService *services.HealthService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// Health handles GET /api/health
// @Summary Service and model readiness
// @Description Reports whether the classification model is loaded, plus basic process metrics. status is "healthy" whenever the report could be assembled.
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse "Health report"
// @Failure 405 {object} models.ErrorResponse "Method not allowed"
// @Failure 500 {object} models.HealthErrorResponse "Health check failed"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	report, err := h.healthService.Check(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.HealthErrorResponse{
			Status:    models.StatusError,
			Error:     MsgHealthCheckFailed,
			Timestamp: h.healthService.Timestamp(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}
