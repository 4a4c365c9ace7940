package expiry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compliport/compliport/internal/expiry"
)

// memStore is an in-memory expiry.Store for exercising reconciliation
// without a database.
type memStore struct {
	records map[expiry.Key]expiry.Notification
}

func newMemStore() *memStore {
	return &memStore{records: make(map[expiry.Key]expiry.Notification)}
}

func (m *memStore) Upsert(_ context.Context, n expiry.Notification) (bool, error) {
	if _, exists := m.records[n.Key]; exists {
		return false, nil
	}
	m.records[n.Key] = n
	return true, nil
}

func (m *memStore) ListKeys(_ context.Context, clientID string) ([]expiry.Key, error) {
	var keys []expiry.Key
	for k, n := range m.records {
		if clientID != "" && n.ClientID != clientID {
			continue
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *memStore) DeleteKeys(_ context.Context, keys []expiry.Key) error {
	for _, k := range keys {
		delete(m.records, k)
	}
	return nil
}

func (m *memStore) kinds(docID string) map[expiry.Kind]int {
	out := map[expiry.Kind]int{}
	for k := range m.records {
		if k.DocumentID == docID {
			out[k.Kind]++
		}
	}
	return out
}

var today = time.Date(2026, time.August, 1, 9, 30, 0, 0, time.Local)

func doc(id string, exp time.Time) expiry.Document {
	return expiryDoc(id, "c1", "Fire NOC", "Acme Industries", exp)
}

func expiryDoc(id, clientID, name, clientName string, exp time.Time) expiry.Document {
	return expiry.Document{ID: id, ClientID: clientID, Name: name, ClientName: clientName, ExpiryDate: exp}
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("five days out fires 30 and 7 day rules for both audiences", func(t *testing.T) {
		store := newMemStore()
		res, err := expiry.Reconcile(ctx, store, []expiry.Document{doc("d1", today.AddDate(0, 0, 5))}, today, "c1")
		require.NoError(t, err)

		assert.Equal(t, 4, res.Created)
		assert.Equal(t, 0, res.Deleted)
		assert.Equal(t, 4, res.Active)

		kinds := store.kinds("d1")
		assert.Equal(t, 2, kinds[expiry.KindExpiry30Days])
		assert.Equal(t, 2, kinds[expiry.KindExpiry7Days])
		assert.Zero(t, kinds[expiry.KindExpiry1Day])
		assert.Zero(t, kinds[expiry.KindExpired])
	})

	t.Run("one day out stacks three severities", func(t *testing.T) {
		store := newMemStore()
		_, err := expiry.Reconcile(ctx, store, []expiry.Document{doc("d1", today.AddDate(0, 0, 1))}, today, "c1")
		require.NoError(t, err)

		kinds := store.kinds("d1")
		assert.Equal(t, 2, kinds[expiry.KindExpiry30Days])
		assert.Equal(t, 2, kinds[expiry.KindExpiry7Days])
		assert.Equal(t, 2, kinds[expiry.KindExpiry1Day])
		assert.Zero(t, kinds[expiry.KindExpired])
	})

	t.Run("past expiry fires only EXPIRED", func(t *testing.T) {
		store := newMemStore()
		_, err := expiry.Reconcile(ctx, store, []expiry.Document{doc("d1", today.AddDate(0, 0, -3))}, today, "c1")
		require.NoError(t, err)

		kinds := store.kinds("d1")
		assert.Equal(t, map[expiry.Kind]int{expiry.KindExpired: 2}, kinds)

		n := store.records[expiry.Key{DocumentID: "d1", Audience: expiry.AudienceAdmin, Kind: expiry.KindExpired}]
		assert.Equal(t, "Fire NOC for Acme Industries has expired.", n.Message)
	})

	t.Run("renewal retracts everything", func(t *testing.T) {
		store := newMemStore()
		_, err := expiry.Reconcile(ctx, store, []expiry.Document{doc("d1", today.AddDate(0, 0, -3))}, today, "c1")
		require.NoError(t, err)
		require.Len(t, store.records, 2)

		// Document renewed: expiry pushed 60 days out, beyond every window.
		res, err := expiry.Reconcile(ctx, store, []expiry.Document{doc("d1", today.AddDate(0, 0, 60))}, today, "c1")
		require.NoError(t, err)

		assert.Equal(t, 0, res.Created)
		assert.Equal(t, 2, res.Deleted)
		assert.Empty(t, store.records)
	})

	t.Run("deleted document retracts its notifications", func(t *testing.T) {
		store := newMemStore()
		_, err := expiry.Reconcile(ctx, store, []expiry.Document{doc("d1", today.AddDate(0, 0, 5))}, today, "c1")
		require.NoError(t, err)
		require.Len(t, store.records, 4)

		res, err := expiry.Reconcile(ctx, store, nil, today, "c1")
		require.NoError(t, err)
		assert.Equal(t, 4, res.Deleted)
		assert.Empty(t, store.records)
	})

	t.Run("idempotent upsert never rewrites content", func(t *testing.T) {
		store := newMemStore()
		docs := []expiry.Document{doc("d1", today.AddDate(0, 0, 5))}

		_, err := expiry.Reconcile(ctx, store, docs, today, "c1")
		require.NoError(t, err)

		key := expiry.Key{DocumentID: "d1", Audience: expiry.AudienceClient, Kind: expiry.KindExpiry7Days}
		original := store.records[key]

		res, err := expiry.Reconcile(ctx, store, docs, today, "c1")
		require.NoError(t, err)

		assert.Equal(t, 0, res.Created)
		assert.Equal(t, 0, res.Deleted)
		assert.Equal(t, original, store.records[key])
		assert.Len(t, store.records, 4)
	})

	t.Run("scoped sweep leaves other clients alone", func(t *testing.T) {
		store := newMemStore()
		_, err := expiry.Reconcile(ctx, store,
			[]expiry.Document{expiryDoc("d2", "c2", "Trade License", "Globex", today.AddDate(0, 0, 3))},
			today, "c2")
		require.NoError(t, err)
		require.Len(t, store.records, 4)

		// Reconciling client c1 with no documents must not touch c2's rows.
		_, err = expiry.Reconcile(ctx, store, nil, today, "c1")
		require.NoError(t, err)
		assert.Len(t, store.records, 4)
	})

	t.Run("expiry exactly today counts as zero days", func(t *testing.T) {
		store := newMemStore()
		// Time-of-day must not matter: expiry late tonight, "now" this morning.
		exp := time.Date(today.Year(), today.Month(), today.Day(), 23, 0, 0, 0, time.Local)
		_, err := expiry.Reconcile(ctx, store, []expiry.Document{doc("d1", exp)}, today, "c1")
		require.NoError(t, err)

		kinds := store.kinds("d1")
		assert.Equal(t, 2, kinds[expiry.KindExpiry30Days])
		assert.Equal(t, 2, kinds[expiry.KindExpiry7Days])
		assert.Equal(t, 2, kinds[expiry.KindExpiry1Day])
		assert.Zero(t, kinds[expiry.KindExpired])
	})
}
