package config

import (
	"fmt"
	"sync"
)

// PortalSettings holds persisted portal-wide settings. NotificationSettings
// is a JSON blob owned by the notification package; config only stores it.
type PortalSettings struct {
	NotificationSettings string `json:"notification_settings"`
}

// SettingsStore defines the interface for persisting portal settings.
type SettingsStore interface {
	Load() (PortalSettings, error)
	Save(settings PortalSettings) error
}

// SettingsManager caches portal settings in memory and writes changes
// through to a SettingsStore. Reads happen on every notification event, so
// the cache avoids a database round-trip per event.
type SettingsManager struct {
	store SettingsStore

	mu       sync.RWMutex
	settings PortalSettings
}

// NewSettingsManager creates a SettingsManager backed by the given SettingsStore.
func NewSettingsManager(store SettingsStore) (*SettingsManager, error) {
	settings, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return &SettingsManager{store: store, settings: settings}, nil
}

// Get returns a copy of the current settings.
func (m *SettingsManager) Get() PortalSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Update persists the settings and refreshes the in-memory copy.
func (m *SettingsManager) Update(incoming PortalSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(incoming); err != nil {
		return fmt.Errorf("persisting settings: %w", err)
	}
	m.settings = incoming
	return nil
}
