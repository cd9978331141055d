package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newsverify/api-backend/internal/metrics"
)

// MetricsHandler exposes the counter registry
type MetricsHandler struct {
	registry *metrics.Registry
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(registry *metrics.Registry) *MetricsHandler {
	return &MetricsHandler{registry: registry}
}

// Metrics handles GET /api/metrics
// @Summary In-process counters
// @Description Snapshot of request, prediction and cache counters since start.
// @Tags metrics
// @Produce json
// @Success 200 {object} map[string]int64 "Counter snapshot"
// @Router /metrics [get]
func (h *MetricsHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.Snapshot())
}
