package models

// PipelineStats are the four headline numbers shown above the opportunity table.
type PipelineStats struct {
	PipelineValue float64 `json:"pipelineValue"`
	TotalLeads    int     `json:"totalLeads"`
	WinRate       float64 `json:"winRate"` // percent
	AIActions     int     `json:"aiActions"`
}

// PipelineSnapshot is the response contract of a sync.
type PipelineSnapshot struct {
	Success       bool          `json:"success"`
	IsDemo        bool          `json:"isDemo"`
	NeedsSetup    bool          `json:"needsSetup,omitempty"`
	Reason        string        `json:"reason,omitempty"`
	ErrorMessage  string        `json:"errorMessage,omitempty"`
	Stats         PipelineStats `json:"stats"`
	Opportunities []Opportunity `json:"opportunities"`
}
