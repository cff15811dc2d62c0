package repository

import (
	"context"
	"database/sql"

	"pipeline_dashboard/internal/models"

	"github.com/dgraph-io/badger/v3"
)

// SettingsRepo stores the single credentials document per application id.
// Load returns (nil, nil) when no document exists yet.
type SettingsRepo interface {
	Load(ctx context.Context, appID string) (*models.Credentials, error)
	Save(ctx context.Context, appID string, creds models.Credentials) error
}

type Repository struct {
	Settings SettingsRepo
}

// NewRepository backs the settings document with a SQLite table.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Settings: NewSettingsSQLite(db),
	}
}

// NewBadgerRepository backs the settings document with an embedded badger store.
func NewBadgerRepository(db *badger.DB) *Repository {
	return &Repository{
		Settings: NewSettingsBadger(db),
	}
}
