package crm

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"pipeline_dashboard/internal/models"
)

// Defaults applied when an upstream record omits a field.
const (
	defaultName    = "Unnamed"
	defaultStatus  = models.StatusOpen
	defaultContact = "Unknown"
)

// rawOpportunity is the subset of the CRM's opportunity record we read.
type rawOpportunity struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Status        string          `json:"status"`
	MonetaryValue json.RawMessage `json:"monetaryValue"`
	Contact       *struct {
		Name string `json:"name"`
	} `json:"contact"`
}

type searchResponse struct {
	Opportunities []rawOpportunity `json:"opportunities"`
}

// normalize maps upstream records to Opportunities and keeps at most limit of them.
// A non-positive limit keeps everything.
func normalize(raw []rawOpportunity, limit int) []models.Opportunity {
	if limit > 0 && len(raw) > limit {
		raw = raw[:limit]
	}
	out := make([]models.Opportunity, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalizeOne(r))
	}
	return out
}

func normalizeOne(r rawOpportunity) models.Opportunity {
	o := models.Opportunity{
		ID:      r.ID,
		Name:    strings.TrimSpace(r.Name),
		Status:  strings.ToLower(strings.TrimSpace(r.Status)),
		Value:   parseAmount(r.MonetaryValue),
		Contact: defaultContact,
	}
	if o.Name == "" {
		o.Name = defaultName
	}
	if o.Status == "" {
		o.Status = defaultStatus
	}
	if r.Contact != nil {
		if name := strings.TrimSpace(r.Contact.Name); name != "" {
			o.Contact = name
		}
	}
	return o
}

// parseAmount accepts a JSON number or a numeric string. Anything else,
// including negative and non-finite values, is 0.
func parseAmount(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		if v, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return 0
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
