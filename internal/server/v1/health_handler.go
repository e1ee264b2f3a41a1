package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	version string
	models  int
}

func NewHealthHandler(version string, models int) *HealthHandler {
	return &HealthHandler{version: version, models: models}
}

// Health is the unauthenticated liveness probe.
//
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"models":  h.models,
	})
}
