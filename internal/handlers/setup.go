package handlers

import (
	"net/http"

	"pipeline_dashboard/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidBodyPref = "invalid body: "
	errEmptySetup      = "invalid body: at least one credential field is required"
	errSaveSetup       = "failed to save credentials"
)

// SetupRequest is the credentials payload accepted by the setup form.
type SetupRequest struct {
	CrmAccessToken string `json:"crmAccessToken" example:"pit-0000"`
	CrmLocationID  string `json:"crmLocationId" example:"ve9EPM428h8vShlRW1KT"`
	VoiceAPIKey    string `json:"voiceApiKey,omitempty"`
	VoiceAgentID   string `json:"voiceAgentId,omitempty"`
}

// @Summary      Save credentials
// @Description  Overwrites the stored credentials document.
// @Tags         setup
// @Accept       json
// @Produce      json
// @Param        body  body      SetupRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/setup [post]
func (h *Handler) setup(c *gin.Context) {
	var req SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Infow("setup_bad_request_body", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	creds := models.Credentials{
		CrmAccessToken: req.CrmAccessToken,
		CrmLocationID:  req.CrmLocationID,
		VoiceAPIKey:    req.VoiceAPIKey,
		VoiceAgentID:   req.VoiceAgentID,
	}
	if creds.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errEmptySetup})
		return
	}

	if err := h.services.Set(c.Request.Context(), creds); err != nil {
		h.log.Errorw("setup_save_failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errSaveSetup})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"configured": creds.Configured(),
	})
}
