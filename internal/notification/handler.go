package notification

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/compliport/compliport/internal/eventbus"
	"github.com/compliport/compliport/internal/storage"
)

// SettingsLoader is a function that loads the current notification settings.
// It is called on every event so that configuration changes take effect
// without requiring a restart.
type SettingsLoader func() (*NotificationSettings, error)

// NotificationHandler receives application events and delivers notifications
// according to the current notification settings.
// The name is intentional: it provides clarity when referenced as notification.NotificationHandler.
//
//nolint:revive
type NotificationHandler struct {
	settingsLoader SettingsLoader
	store          storage.NotificationStore
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(loader SettingsLoader, store storage.NotificationStore) *NotificationHandler {
	return &NotificationHandler{settingsLoader: loader, store: store}
}

// humanSubject returns a readable email subject for a given event type.
// For well-known events a friendly description is used; unknown types fall
// back to the raw event type string.
func humanSubject(eventType string) string {
	switch eventType {
	case eventbus.EventReconcileCompleted:
		return "Daily Compliance Sweep Completed"
	case eventbus.EventReconcileFailed:
		return "Daily Compliance Sweep Failed"
	case eventbus.EventNotificationCreated:
		return "New Document Expiry Alerts"
	case eventbus.EventNotificationRetracted:
		return "Document Expiry Alerts Retracted"
	}
	return eventType
}

// shouldSendForEvent returns false when the portal's preferences explicitly
// disable notifications for the given event type.
func shouldSendForEvent(eventType string, settings *NotificationSettings) bool {
	prefs := settings.Preferences.Reconcile
	switch eventType {
	case eventbus.EventReconcileCompleted:
		return prefs.IsOnCompletedEnabled()
	case eventbus.EventReconcileFailed:
		return prefs.IsOnFailedEnabled()
	case eventbus.EventNotificationCreated:
		return prefs.IsOnCreatedEnabled()
	case eventbus.EventNotificationRetracted:
		return prefs.IsOnRetractedEnabled()
	}
	return true
}

// Handle processes an event: loads settings, builds the message, calls the
// SMTP provider, and logs the outcome.
func (h *NotificationHandler) Handle(eventType string, payload map[string]string) {
	settings, err := h.settingsLoader()
	if err != nil {
		log.Printf("notification: failed to load settings: %v", err)
		return
	}
	if !settings.Enabled {
		return
	}
	if !shouldSendForEvent(eventType, settings) {
		return
	}

	provider := NewSMTPProvider(settings.Provider)
	subject := buildSubject(humanSubject(eventType))

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	bodyParts := make([]string, 0, len(keys))
	for _, k := range keys {
		bodyParts = append(bodyParts, fmt.Sprintf("%s: %s", k, payload[k]))
	}
	body := strings.Join(bodyParts, "\n")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sendErr := provider.Send(ctx, Message{Subject: subject, Body: body})

	entry := storage.NotificationLogEntry{
		EventType: eventType,
		Provider:  provider.Name(),
		Recipient: settings.Provider.ToAddrs,
		Subject:   subject,
		Status:    "sent",
		CreatedAt: time.Now(),
	}
	if sendErr != nil {
		entry.Status = "failed"
		entry.ErrorMsg = sendErr.Error()
		log.Printf("notification: failed to send for event %q: %v", eventType, sendErr)
	}

	if logErr := h.store.LogNotification(context.Background(), entry); logErr != nil {
		log.Printf("notification: failed to log delivery for event %q: %v", eventType, logErr)
	}
}
