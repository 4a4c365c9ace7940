package storage

import (
	"context"
	"time"

	"github.com/compliport/compliport/internal/expiry"
)

// ComplianceNotification is the read model for one persisted notification
// row, keyed by (document_id, audience, kind).
type ComplianceNotification struct {
	DocumentID string    `json:"document_id"`
	Audience   string    `json:"audience"`
	Kind       string    `json:"kind"`
	ClientID   string    `json:"client_id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	NotifyAt   string    `json:"notify_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// ComplianceNotificationStore persists expiry notifications. It embeds
// expiry.Store so the reconciler can talk to it directly, and adds a
// transactional scope plus the read paths the API serves.
type ComplianceNotificationStore interface {
	expiry.Store

	// InTx runs fn against a transaction-bound expiry.Store. The whole
	// reconciliation pass commits or rolls back as one unit.
	InTx(ctx context.Context, fn func(expiry.Store) error) error

	// ListNotifications returns persisted rows for one audience, scoped to
	// clientID when non-empty, ordered by notify_at descending.
	ListNotifications(ctx context.Context, clientID string, audience expiry.Audience) ([]ComplianceNotification, error)
}
