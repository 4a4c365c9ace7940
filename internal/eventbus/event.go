package eventbus

import "time"

// Event types published by the compliance engine. Listeners switch on these.
const (
	EventReconcileCompleted    = "compliance.reconcile.completed"
	EventReconcileFailed       = "compliance.reconcile.failed"
	EventNotificationCreated   = "compliance.notification.created"
	EventNotificationRetracted = "compliance.notification.retracted"
)

// Event represents an application event published to the bus. ID is assigned
// at publish time and ties log lines about the same event together.
type Event struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Payload   map[string]string `json:"payload"`
}

// Listener is a function that handles an event.
type Listener func(Event)
