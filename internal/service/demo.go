package service

import "pipeline_dashboard/internal/models"

// Illustrative totals shown while real data is unavailable. They are not the
// sum of the demo opportunities.
const (
	demoPipelineValue = 84200
	demoTotalLeads    = 24
	demoWinRate       = 72
	demoAIActions     = 342
)

// DemoSnapshot returns the fixed placeholder snapshot. A non-empty reason is
// attached as both the reason label and the error message.
func DemoSnapshot(reason string) models.PipelineSnapshot {
	return models.PipelineSnapshot{
		Success:      true,
		IsDemo:       true,
		Reason:       reason,
		ErrorMessage: reason,
		Stats: models.PipelineStats{
			PipelineValue: demoPipelineValue,
			TotalLeads:    demoTotalLeads,
			WinRate:       demoWinRate,
			AIActions:     demoAIActions,
		},
		Opportunities: []models.Opportunity{
			{ID: "d1", Name: "DEMO: Premium Solar", Status: models.StatusOpen, Value: 25000, Contact: "James Miller"},
			{ID: "d2", Name: "DEMO: Roof Repair", Status: models.StatusWon, Value: 42000, Contact: "Sarah Chen"},
		},
	}
}
