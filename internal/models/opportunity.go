package models

// Opportunity statuses as reported by the CRM (lower-cased).
const (
	StatusOpen   = "open"
	StatusWon    = "won"
	StatusLost   = "lost"
	StatusNotice = "notice"
	StatusError  = "error"
)

// Opportunity is a normalized pipeline entry.
type Opportunity struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Status  string  `json:"status"` // open | won | lost | notice | error
	Value   float64 `json:"value"`  // never negative
	Contact string  `json:"contact"`
}
