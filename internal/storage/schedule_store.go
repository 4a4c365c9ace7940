package storage

import (
	"context"
	"time"
)

// ScheduleEntry is one persisted row of a generated compliance schedule.
// ScheduledFor is the ISO date; Label is the display form (DD/MM/YYYY).
type ScheduleEntry struct {
	ID           int64     `json:"id"`
	ClientID     string    `json:"client_id"`
	Category     string    `json:"category"`
	Title        string    `json:"title"`
	ScheduledFor string    `json:"scheduled_for"`
	Label        string    `json:"label"`
	CreatedAt    time.Time `json:"created_at"`
}

// ScheduleStore defines the interface for persisted schedule rows.
type ScheduleStore interface {
	// ListEntries returns a client's rows ordered by date; category ""
	// returns every category.
	ListEntries(ctx context.Context, clientID, category string) ([]ScheduleEntry, error)
	// ReplaceEntries swaps the (client, category) slice wholesale in one
	// transaction. Regeneration is idempotent, so replacement is safe.
	ReplaceEntries(ctx context.Context, clientID, category string, entries []ScheduleEntry) error
}
