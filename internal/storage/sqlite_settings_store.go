package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/compliport/compliport/internal/config"
)

// SQLiteSettingsStore implements config.SettingsStore backed by a SQLite database.
type SQLiteSettingsStore struct {
	db *sql.DB
}

// NewSQLiteSettingsStore returns a new SQLiteSettingsStore.
func NewSQLiteSettingsStore(db *sql.DB) *SQLiteSettingsStore {
	return &SQLiteSettingsStore{db: db}
}

// Load returns the persisted portal settings. If no row exists yet, it
// inserts the default row and returns defaults.
func (s *SQLiteSettingsStore) Load() (config.PortalSettings, error) {
	var ps config.PortalSettings

	ctx := context.Background()
	err := s.db.QueryRowContext(ctx,
		"SELECT notification_settings FROM portal_settings WHERE id = 1").
		Scan(&ps.NotificationSettings)
	if err == sql.ErrNoRows {
		ps = config.PortalSettings{NotificationSettings: "{}"}
		if err := s.Save(ps); err != nil {
			return ps, fmt.Errorf("initializing default settings: %w", err)
		}
		return ps, nil
	}
	if err != nil {
		return ps, fmt.Errorf("loading settings: %w", err)
	}
	return ps, nil
}

// Save persists the portal settings (single row, id=1).
func (s *SQLiteSettingsStore) Save(settings config.PortalSettings) error {
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO portal_settings (id, notification_settings)
		VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET
			notification_settings = excluded.notification_settings`,
		settings.NotificationSettings,
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
