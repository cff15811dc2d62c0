package service

import (
	"context"
	"time"

	"pipeline_dashboard/internal/logger"
	"pipeline_dashboard/internal/logring"
	"pipeline_dashboard/internal/models"
	"pipeline_dashboard/internal/repository"
)

// ConfigStore reads and overwrites the single credentials document.
// Get never fails: an unreadable or missing document is reported as nil.
type ConfigStore interface {
	Get(ctx context.Context) *models.Credentials
	Set(ctx context.Context, creds models.Credentials) error
}

// Syncer produces a renderable pipeline snapshot on every call.
type Syncer interface {
	Sync(ctx context.Context) models.PipelineSnapshot
}

// Diagnostics exposes liveness and the in-memory system log.
type Diagnostics interface {
	Health(ctx context.Context) HealthStatus
	Logs() []models.LogEntry
}

// VoiceSession hands out signed conversation URLs for the voice agent.
type VoiceSession interface {
	SignedURL(ctx context.Context) (string, error)
}

// Scheduler runs background syncs until ctx is canceled.
type Scheduler interface {
	Run(ctx context.Context, interval time.Duration)
}

// CRMSearcher is the upstream opportunity search (implemented by crm.Client).
type CRMSearcher interface {
	Search(ctx context.Context, creds models.Credentials) ([]models.Opportunity, error)
}

// VoiceProvider is the upstream signed URL exchange (implemented by voice.Client).
type VoiceProvider interface {
	SignedURL(ctx context.Context, apiKey, agentID string) (string, error)
}

// Root Service aggregates all sub-services.
type Service struct {
	ConfigStore
	Syncer
	Diagnostics
	VoiceSession
	Scheduler
}

// Deps are the collaborators shared by the sub-services.
type Deps struct {
	CRM   CRMSearcher
	Voice VoiceProvider
	Ring  *logring.Ring
	Log   *logger.Logger
}

// NewService wires the repository layer and upstream clients into concrete services.
func NewService(repos *repository.Repository, deps Deps, opts Options) *Service {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Ring == nil {
		deps.Ring = logring.New(logring.DefaultCapacity)
	}
	store := NewConfigStoreService(repos.Settings, opts.AppID, deps.Ring, deps.Log)
	engine := NewSyncEngine(store, deps.CRM, deps.Ring, deps.Log, opts)
	return &Service{
		ConfigStore:  store,
		Syncer:       engine,
		Diagnostics:  NewDiagnosticsService(store, deps.Ring),
		VoiceSession: NewVoiceSessionService(store, deps.Voice, deps.Ring, deps.Log),
		Scheduler:    NewSyncScheduler(engine, deps.Log),
	}
}
