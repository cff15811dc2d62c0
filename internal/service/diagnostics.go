package service

import (
	"context"
	"strings"
	"time"

	"pipeline_dashboard/internal/logring"
	"pipeline_dashboard/internal/models"
)

// healthStoreTimeout bounds the credentials read behind the health check.
const healthStoreTimeout = 2 * time.Second

const locationMissing = "missing"

type DiagnosticsService struct {
	store ConfigStore
	ring  *logring.Ring
}

func NewDiagnosticsService(store ConfigStore, ring *logring.Ring) *DiagnosticsService {
	return &DiagnosticsService{store: store, ring: ring}
}

// Health always reports Online; configuration flags degrade to false when the
// store is unreachable.
func (s *DiagnosticsService) Health(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthStoreTimeout)
	defer cancel()

	creds := s.store.Get(ctx)
	st := HealthStatus{
		Online:     true,
		Configured: creds.Configured(),
		Keys: HealthKeys{
			CRM:   creds != nil && strings.TrimSpace(creds.CrmAccessToken) != "",
			Voice: creds != nil && strings.TrimSpace(creds.VoiceAPIKey) != "",
		},
		Location: locationMissing,
	}
	if creds != nil && strings.TrimSpace(creds.CrmLocationID) != "" {
		st.Location = creds.CrmLocationID
	}
	return st
}

// Logs returns the system log, newest first.
func (s *DiagnosticsService) Logs() []models.LogEntry {
	return s.ring.ReadAll()
}
