package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compliport/compliport/internal/eventbus"
	"github.com/compliport/compliport/internal/notification"
	"github.com/compliport/compliport/internal/storage"
)

// --- stub store ---

type stubStore struct {
	entries []storage.NotificationLogEntry
	err     error
}

func (s *stubStore) LogNotification(_ context.Context, entry storage.NotificationLogEntry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubStore) ListNotifications(_ context.Context, _ int) ([]storage.NotificationLogEntry, error) {
	return s.entries, nil
}

func enabledSettings() *notification.NotificationSettings {
	return &notification.NotificationSettings{
		Enabled: true,
		Provider: notification.SMTPConfig{
			Host:     "localhost",
			Port:     9999, // will fail to connect
			FromAddr: "from@example.com",
			ToAddrs:  "hr@acme.example",
		},
	}
}

// --- tests ---

func TestHandle_NotificationsDisabled(t *testing.T) {
	store := &stubStore{}
	loader := func() (*notification.NotificationSettings, error) {
		return &notification.NotificationSettings{Enabled: false}, nil
	}
	h := notification.NewNotificationHandler(loader, store)
	h.Handle(eventbus.EventReconcileCompleted, map[string]string{"created": "3"})

	// Nothing should be logged when notifications are disabled.
	assert.Empty(t, store.entries)
}

func TestHandle_LoaderError(t *testing.T) {
	store := &stubStore{}
	loader := func() (*notification.NotificationSettings, error) {
		return nil, errors.New("load failure")
	}
	h := notification.NewNotificationHandler(loader, store)
	// Should not panic; just log.
	h.Handle(eventbus.EventReconcileCompleted, map[string]string{})
	assert.Empty(t, store.entries)
}

func TestHandle_PreferenceDisablesEvent(t *testing.T) {
	store := &stubStore{}
	off := false
	settings := enabledSettings()
	settings.Preferences.Reconcile.OnCompleted = &off
	loader := func() (*notification.NotificationSettings, error) {
		return settings, nil
	}

	h := notification.NewNotificationHandler(loader, store)
	h.Handle(eventbus.EventReconcileCompleted, map[string]string{"created": "3"})
	assert.Empty(t, store.entries, "sweep-completed mails are switched off")

	// Other events are unaffected by the completed toggle.
	h.Handle(eventbus.EventReconcileFailed, map[string]string{"error": "db down"})
	require.Len(t, store.entries, 1)
}

func TestHandle_FailedSendIsLogged(t *testing.T) {
	store := &stubStore{}
	loader := func() (*notification.NotificationSettings, error) {
		return enabledSettings(), nil
	}

	h := notification.NewNotificationHandler(loader, store)
	h.Handle(eventbus.EventNotificationCreated, map[string]string{"client_id": "c1", "created": "4"})

	// The SMTP connection to port 9999 fails, and the failure is logged.
	require.Len(t, store.entries, 1)
	entry := store.entries[0]
	assert.Equal(t, eventbus.EventNotificationCreated, entry.EventType)
	assert.Equal(t, "smtp", entry.Provider)
	assert.Equal(t, "hr@acme.example", entry.Recipient)
	assert.Equal(t, "Compliport Notification - New Document Expiry Alerts", entry.Subject)
	assert.Equal(t, "failed", entry.Status)
	assert.NotEmpty(t, entry.ErrorMsg)
}

func TestHandle_LogStoreError(t *testing.T) {
	// Even if the store fails to log, the handler should not panic.
	store := &stubStore{err: errors.New("db error")}
	loader := func() (*notification.NotificationSettings, error) {
		return enabledSettings(), nil
	}
	h := notification.NewNotificationHandler(loader, store)
	// Should not panic even though both Send and LogNotification fail.
	h.Handle(eventbus.EventReconcileCompleted, map[string]string{"created": "1"})
}
