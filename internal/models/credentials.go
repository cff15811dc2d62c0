package models

import "strings"

// Credentials is the single settings document that unlocks the CRM and voice integrations.
type Credentials struct {
	CrmAccessToken string `json:"crmAccessToken"` // CRM private integration (PIT) token
	CrmLocationID  string `json:"crmLocationId"`
	VoiceAPIKey    string `json:"voiceApiKey"`
	VoiceAgentID   string `json:"voiceAgentId"`
}

// Configured reports whether the CRM token and location are both present.
func (c *Credentials) Configured() bool {
	if c == nil {
		return false
	}
	return strings.TrimSpace(c.CrmAccessToken) != "" && strings.TrimSpace(c.CrmLocationID) != ""
}

// VoiceConfigured reports whether the voice provider key and agent are both present.
func (c *Credentials) VoiceConfigured() bool {
	if c == nil {
		return false
	}
	return strings.TrimSpace(c.VoiceAPIKey) != "" && strings.TrimSpace(c.VoiceAgentID) != ""
}

// IsZero reports whether every field is blank.
func (c Credentials) IsZero() bool {
	return c == Credentials{}
}
