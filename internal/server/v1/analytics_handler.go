package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/draftbox/mediaroute/internal/analytics"
	"github.com/draftbox/mediaroute/internal/domain"
)

type AnalyticsHandler struct {
	service analytics.Service
}

func NewAnalyticsHandler(service analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

// GetUsage returns per-day generation counts and latency aggregates.
//
// GET /v1/generations/stats?days=7
func (h *AnalyticsHandler) GetUsage(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		_ = c.Error(domain.New(http.StatusBadRequest, "Invalid Parameter", "days must be an integer"))
		return
	}

	stats, err := h.service.GetUsageOverview(c.Request.Context(), days)
	if err != nil {
		_ = c.Error(domain.InternalError("failed to fetch analytics", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   stats,
	})
}
