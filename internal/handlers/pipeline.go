package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Health and configuration status
// @Description  Always answers, even when the configuration store is unreachable.
// @Tags         system
// @Produce      json
// @Success      200  {object}  service.HealthStatus
// @Router       /api/health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Health(c.Request.Context()))
}

// @Summary      Sync CRM pipeline
// @Description  Always 200. Falls back to demo data when credentials are missing, the CRM is empty, or the CRM call fails.
// @Tags         pipeline
// @Produce      json
// @Success      200  {object}  models.PipelineSnapshot
// @Router       /api/sync [post]
func (h *Handler) sync(c *gin.Context) {
	snap := h.services.Sync(c.Request.Context())
	c.JSON(http.StatusOK, snap)
}
