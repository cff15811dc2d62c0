package service

// Options are the tunables shared by the sync path.
type Options struct {
	AppID       string  // key of the credentials document
	SetupPortal bool    // answer needsSetup when unconfigured
	WinRate     float64 // reported as-is; not derived from CRM data
	AIActions   int     // reported as-is; not derived from CRM data
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Online     bool       `json:"online"`
	Configured bool       `json:"configured"`
	Keys       HealthKeys `json:"keys"`
	Location   string     `json:"location"`
}

type HealthKeys struct {
	CRM   bool `json:"crm"`
	Voice bool `json:"voice"`
}
