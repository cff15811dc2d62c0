package service

import (
	"context"
	"errors"
	"fmt"

	"pipeline_dashboard/internal/crm"
	"pipeline_dashboard/internal/logger"
	"pipeline_dashboard/internal/logring"
	"pipeline_dashboard/internal/models"
)

// ReasonMissingCredentials labels the demo snapshot served before setup.
const ReasonMissingCredentials = "missing credentials"

// SyncEngine turns one credentials lookup and at most one CRM call into a
// snapshot. Every path yields a renderable snapshot with Success set; faults
// surface only through IsDemo, ErrorMessage and the system log.
type SyncEngine struct {
	store ConfigStore
	crm   CRMSearcher
	ring  *logring.Ring
	log   *logger.Logger
	opts  Options
}

func NewSyncEngine(store ConfigStore, searcher CRMSearcher, ring *logring.Ring, log *logger.Logger, opts Options) *SyncEngine {
	return &SyncEngine{store: store, crm: searcher, ring: ring, log: log, opts: opts}
}

// Sync never returns an error.
func (e *SyncEngine) Sync(ctx context.Context) models.PipelineSnapshot {
	creds := e.store.Get(ctx)
	if !creds.Configured() {
		return e.notConfigured()
	}

	opps, err := e.crm.Search(ctx, *creds)
	if err != nil {
		return e.upstreamFailed(err)
	}
	if len(opps) == 0 {
		e.log.Infow("sync_empty_upstream", "location", creds.CrmLocationID)
		e.ring.Info("CRM returned 0 opportunities; showing demo data.")
		return DemoSnapshot("")
	}

	e.log.Infow("sync_succeeded", "count", len(opps), "location", creds.CrmLocationID)
	e.ring.Info(fmt.Sprintf("Pulled %d real opportunities from CRM.", len(opps)))
	return e.realSnapshot(opps)
}

func (e *SyncEngine) notConfigured() models.PipelineSnapshot {
	e.log.Warnw("sync_skipped_missing_credentials", "app_id", e.opts.AppID)
	e.ring.Warn("Sync skipped: CRM access token or location id missing.")
	snap := DemoSnapshot(ReasonMissingCredentials)
	if e.opts.SetupPortal {
		snap.NeedsSetup = true
	}
	return snap
}

func (e *SyncEngine) upstreamFailed(err error) models.PipelineSnapshot {
	kind := "network"
	switch {
	case errors.Is(err, crm.ErrUnauthorized):
		kind = "auth"
	case errors.Is(err, crm.ErrTimeout):
		kind = "timeout"
	}
	e.log.Errorw("sync_upstream_failed", "kind", kind, "err", err)
	e.ring.Error("CRM Error: " + err.Error())
	return DemoSnapshot(err.Error())
}

func (e *SyncEngine) realSnapshot(opps []models.Opportunity) models.PipelineSnapshot {
	var total float64
	for _, o := range opps {
		total += o.Value
	}
	return models.PipelineSnapshot{
		Success: true,
		IsDemo:  false,
		Stats: models.PipelineStats{
			PipelineValue: total,
			TotalLeads:    len(opps),
			WinRate:       e.opts.WinRate,
			AIActions:     e.opts.AIActions,
		},
		Opportunities: opps,
	}
}
