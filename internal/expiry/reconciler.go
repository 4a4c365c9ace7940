package expiry

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Document is the slice of a legal document the reconciler needs.
type Document struct {
	ID         string
	ClientID   string
	Name       string
	ClientName string
	ExpiryDate time.Time
}

// Key uniquely identifies a notification record.
type Key struct {
	DocumentID string
	Audience   Audience
	Kind       Kind
}

// Notification is the persisted record for one (document, audience, kind)
// triple. Content is written once on creation and never refreshed.
type Notification struct {
	Key
	ClientID string
	Title    string
	Message  string
	NotifyAt time.Time
}

// Store is the persistence collaborator for reconciliation. Implementations
// are expected to back Upsert with the store's native unique-key conflict
// resolution on (document_id, audience, kind).
type Store interface {
	// Upsert creates the notification if its key is absent and reports
	// whether a row was created. An existing row is left untouched.
	Upsert(ctx context.Context, n Notification) (created bool, err error)
	// ListKeys returns every persisted notification key, scoped to clientID
	// when non-empty.
	ListKeys(ctx context.Context, clientID string) ([]Key, error)
	// DeleteKeys removes the given notification records.
	DeleteKeys(ctx context.Context, keys []Key) error
}

// Result summarizes one reconciliation pass.
type Result struct {
	Created int `json:"created"`
	Deleted int `json:"deleted"`
	Active  int `json:"active"`
}

// Reconcile brings the notification store in line with the expiry status of
// docs as of today. For every document it evaluates all rules, upserts a
// record per firing (rule, audience) pair, then deletes every persisted key
// outside the desired set. Scope restricts the deletion sweep to one
// client's records; pass "" when docs covers all clients.
//
// Any store error aborts the pass and propagates; callers wanting atomicity
// run Reconcile against a transaction-bound Store.
func Reconcile(ctx context.Context, store Store, docs []Document, today time.Time, scope string) (Result, error) {
	day := midnight(today)

	desired := make(map[Key]struct{})
	var res Result
	for _, doc := range docs {
		diff := daysBetween(day, doc.ExpiryDate)
		for _, rule := range Rules {
			if !rule.Fires(diff) {
				continue
			}
			for _, aud := range Audiences {
				k := Key{DocumentID: doc.ID, Audience: aud, Kind: rule.Kind}
				desired[k] = struct{}{}

				created, err := store.Upsert(ctx, Notification{
					Key:      k,
					ClientID: doc.ClientID,
					Title:    rule.Title,
					Message:  rule.Message(doc.Name, doc.ClientName),
					NotifyAt: day,
				})
				if err != nil {
					return Result{}, fmt.Errorf("upserting notification for document %q: %w", doc.ID, err)
				}
				if created {
					res.Created++
				}
			}
		}
	}

	persisted, err := store.ListKeys(ctx, scope)
	if err != nil {
		return Result{}, fmt.Errorf("listing persisted notification keys: %w", err)
	}

	var stale []Key
	for _, k := range persisted {
		if _, want := desired[k]; !want {
			stale = append(stale, k)
		}
	}
	if len(stale) > 0 {
		if err := store.DeleteKeys(ctx, stale); err != nil {
			return Result{}, fmt.Errorf("deleting stale notifications: %w", err)
		}
	}

	res.Deleted = len(stale)
	res.Active = len(desired)
	return res, nil
}

// daysBetween returns the whole-day difference to - from at midnight
// granularity. Rounding absorbs DST transitions inside the span.
func daysBetween(from, to time.Time) int {
	return int(math.Round(midnight(to).Sub(midnight(from)).Hours() / 24))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
