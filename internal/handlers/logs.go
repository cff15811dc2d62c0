package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      System log
// @Description  Bounded diagnostic log, newest first.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "logs"
// @Router       /api/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"logs": h.services.Logs()})
}
