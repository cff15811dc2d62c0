package service

import (
	"context"
	"fmt"

	"pipeline_dashboard/internal/logger"
	"pipeline_dashboard/internal/logring"
	"pipeline_dashboard/internal/models"
	"pipeline_dashboard/internal/repository"
)

type ConfigStoreService struct {
	repo  repository.SettingsRepo
	appID string
	ring  *logring.Ring
	log   *logger.Logger
}

func NewConfigStoreService(repo repository.SettingsRepo, appID string, ring *logring.Ring, log *logger.Logger) *ConfigStoreService {
	return &ConfigStoreService{repo: repo, appID: appID, ring: ring, log: log}
}

// Get returns the stored credentials, or nil when the document is missing or
// the backend cannot be read. Read failures are logged, never returned.
func (s *ConfigStoreService) Get(ctx context.Context) *models.Credentials {
	creds, err := s.repo.Load(ctx, s.appID)
	if err != nil {
		s.log.Warnw("config_read_failed", "app_id", s.appID, "err", err)
		s.ring.Error("Config store unavailable: " + err.Error())
		return nil
	}
	return creds
}

// Set overwrites the credentials document wholesale.
func (s *ConfigStoreService) Set(ctx context.Context, creds models.Credentials) error {
	if err := s.repo.Save(ctx, s.appID, creds); err != nil {
		s.log.Errorw("config_write_failed", "app_id", s.appID, "err", err)
		s.ring.Error("Saving credentials failed: " + err.Error())
		return fmt.Errorf("save credentials: %w", err)
	}
	s.log.Infow("config_written", "app_id", s.appID, "crm_configured", creds.Configured())
	s.ring.Info("Credentials updated.")
	return nil
}

// Seed writes creds only when no document exists yet. It reports whether a
// write happened.
func (s *ConfigStoreService) Seed(ctx context.Context, creds models.Credentials) (bool, error) {
	if creds.IsZero() {
		return false, nil
	}
	existing, err := s.repo.Load(ctx, s.appID)
	if err != nil {
		return false, fmt.Errorf("check existing credentials: %w", err)
	}
	if existing != nil {
		return false, nil
	}
	if err := s.Set(ctx, creds); err != nil {
		return false, err
	}
	return true, nil
}
