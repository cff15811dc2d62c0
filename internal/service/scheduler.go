package service

import (
	"context"
	"time"

	"pipeline_dashboard/internal/logger"
)

// SyncScheduler re-runs the sync engine on a fixed period so the system log
// reflects upstream health without a dashboard open.
type SyncScheduler struct {
	syncer Syncer
	log    *logger.Logger
}

func NewSyncScheduler(syncer Syncer, log *logger.Logger) *SyncScheduler {
	return &SyncScheduler{syncer: syncer, log: log}
}

// Run ticks at the given interval until ctx is canceled. A non-positive
// interval disables the loop.
func (s *SyncScheduler) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			snap := s.syncer.Sync(ctx)
			s.log.Debugw("scheduled_sync", "is_demo", snap.IsDemo, "leads", snap.Stats.TotalLeads)
		}
	}
}
