package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/compliport/compliport/internal/config"
	"github.com/compliport/compliport/internal/config/mocks"
)

func TestNewSettingsManager(t *testing.T) {
	t.Run("loads settings from the store", func(t *testing.T) {
		store := new(mocks.MockSettingsStore)
		store.On("Load").Return(config.PortalSettings{NotificationSettings: `{"enabled":true}`}, nil)

		mgr, err := config.NewSettingsManager(store)
		require.NoError(t, err)
		assert.Equal(t, `{"enabled":true}`, mgr.Get().NotificationSettings)
		store.AssertExpectations(t)
	})

	t.Run("store load error propagates", func(t *testing.T) {
		store := new(mocks.MockSettingsStore)
		store.On("Load").Return(config.PortalSettings{}, errors.New("db down"))

		_, err := config.NewSettingsManager(store)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading settings")
	})
}

func TestSettingsManager_Update(t *testing.T) {
	t.Run("persists then refreshes the cache", func(t *testing.T) {
		store := new(mocks.MockSettingsStore)
		store.On("Load").Return(config.PortalSettings{NotificationSettings: "{}"}, nil)
		incoming := config.PortalSettings{NotificationSettings: `{"enabled":true}`}
		store.On("Save", incoming).Return(nil)

		mgr, err := config.NewSettingsManager(store)
		require.NoError(t, err)

		require.NoError(t, mgr.Update(incoming))
		assert.Equal(t, incoming, mgr.Get())
		store.AssertExpectations(t)
	})

	t.Run("save error leaves the cache untouched", func(t *testing.T) {
		store := new(mocks.MockSettingsStore)
		store.On("Load").Return(config.PortalSettings{NotificationSettings: "{}"}, nil)
		store.On("Save", mock.Anything).Return(errors.New("disk full"))

		mgr, err := config.NewSettingsManager(store)
		require.NoError(t, err)

		err = mgr.Update(config.PortalSettings{NotificationSettings: `{"enabled":true}`})
		require.Error(t, err)
		assert.Equal(t, "{}", mgr.Get().NotificationSettings)
	})
}

// Get returns a value copy, so callers cannot mutate the cached settings.
func TestSettingsManager_GetReturnsCopy(t *testing.T) {
	store := new(mocks.MockSettingsStore)
	store.On("Load").Return(config.PortalSettings{NotificationSettings: "{}"}, nil)

	mgr, err := config.NewSettingsManager(store)
	require.NoError(t, err)

	got := mgr.Get()
	got.NotificationSettings = "mutated"
	assert.Equal(t, "{}", mgr.Get().NotificationSettings)
}
