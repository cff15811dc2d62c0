package handlers

import (
	"errors"
	"net/http"

	"pipeline_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

const errVoiceSession = "failed to create voice session"

// @Summary      Voice agent session
// @Description  Exchanges the stored voice credentials for a signed conversation URL.
// @Tags         voice
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success, signedUrl"
// @Failure      500  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /api/voice-session [post]
func (h *Handler) voiceSession(c *gin.Context) {
	signed, err := h.services.SignedURL(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrVoiceNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": err.Error()})
			return
		}
		h.log.Errorw("voice_session_failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": errVoiceSession})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "signedUrl": signed})
}
