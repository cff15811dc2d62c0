package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pipeline_dashboard/internal/models"

	"github.com/dgraph-io/badger/v3"
)

// SettingsBadger keeps each settings document as a JSON value under "settings/<appID>".
type SettingsBadger struct {
	db *badger.DB
}

func NewSettingsBadger(db *badger.DB) *SettingsBadger {
	return &SettingsBadger{db: db}
}

var _ SettingsRepo = (*SettingsBadger)(nil)

const settingsKeyPrefix = "settings/"

func settingsKey(appID string) []byte {
	return []byte(settingsKeyPrefix + appID)
}

// Save overwrites the whole document for appID.
func (r *SettingsBadger) Save(ctx context.Context, appID string, creds models.Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal settings %q: %w", appID, err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(settingsKey(appID), doc)
	})
	if err != nil {
		return fmt.Errorf("put settings %q: %w", appID, err)
	}
	return nil
}

// Load fetches the document for appID. Returns (nil, nil) if not found.
func (r *SettingsBadger) Load(ctx context.Context, appID string) (*models.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var doc []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(settingsKey(appID))
		if err != nil {
			return err
		}
		doc, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings %q: %w", appID, err)
	}

	var creds models.Credentials
	if err := json.Unmarshal(doc, &creds); err != nil {
		return nil, fmt.Errorf("decode settings %q: %w", appID, err)
	}
	return &creds, nil
}
