package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pipeline_dashboard/internal/models"
)

type SettingsSQLite struct {
	db *sql.DB
}

func NewSettingsSQLite(db *sql.DB) *SettingsSQLite {
	return &SettingsSQLite{db: db}
}

// Ensure implementation of SettingsRepo interface at compile time.
var _ SettingsRepo = (*SettingsSQLite)(nil)

const (
	upsertSettingsSQL = `
		INSERT INTO settings (app_id, doc, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(app_id) DO UPDATE SET
			doc=excluded.doc,
			updated_at=excluded.updated_at
	`

	selectSettingsSQL = `SELECT doc FROM settings WHERE app_id = ?`
)

// Save overwrites the whole document for appID. There is no partial merge.
func (r *SettingsSQLite) Save(ctx context.Context, appID string, creds models.Credentials) error {
	doc, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal settings %q: %w", appID, err)
	}
	if _, err := r.db.ExecContext(ctx, upsertSettingsSQL, appID, string(doc), time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert settings %q: %w", appID, err)
	}
	return nil
}

// Load fetches the document for appID. Returns (nil, nil) if not found.
func (r *SettingsSQLite) Load(ctx context.Context, appID string) (*models.Credentials, error) {
	var doc string
	err := r.db.QueryRowContext(ctx, selectSettingsSQL, appID).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select settings %q: %w", appID, err)
	}

	var creds models.Credentials
	if err := json.Unmarshal([]byte(doc), &creds); err != nil {
		return nil, fmt.Errorf("decode settings %q: %w", appID, err)
	}
	return &creds, nil
}
