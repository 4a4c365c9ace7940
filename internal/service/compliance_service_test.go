package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/compliport/compliport/internal/eventbus"
	"github.com/compliport/compliport/internal/expiry"
	"github.com/compliport/compliport/internal/storage"
	"github.com/compliport/compliport/internal/storage/mocks"
)

// recordingBus captures published events synchronously.
type recordingBus struct {
	mu     sync.Mutex
	events []struct {
		Type    string
		Payload map[string]string
	}
}

func (b *recordingBus) Publish(eventType string, payload map[string]string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, struct {
		Type    string
		Payload map[string]string
	}{eventType, payload})
}

func (b *recordingBus) Subscribe(eventbus.Listener) {}
func (b *recordingBus) Close()                      {}

func newTestComplianceService(
	store *mocks.MockComplianceStore,
	docs *mocks.MockDocumentStore,
	clients *mocks.MockClientStore,
	bus *recordingBus,
) ComplianceService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewComplianceService(store, docs, clients, bus, logger)
}

func TestReconcileClient(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)

	clients := new(mocks.MockClientStore)
	clients.On("GetClient", mock.Anything, "c1").Return(&storage.Client{ID: "c1", Name: "Acme"}, nil)

	docs := new(mocks.MockDocumentStore)
	docs.On("ListDocuments", mock.Anything, "c1").Return([]*storage.LegalDocument{
		{ID: "d1", ClientID: "c1", Name: "Trade License", ExpiryDate: today.AddDate(0, 0, 5)},
	}, nil)

	store := new(mocks.MockComplianceStore)
	store.On("InTx", mock.Anything).Return(nil)
	store.On("Upsert", mock.Anything, mock.AnythingOfType("expiry.Notification")).Return(true, nil)
	store.On("ListKeys", mock.Anything, "c1").Return([]expiry.Key{}, nil)

	bus := &recordingBus{}
	svc := newTestComplianceService(store, docs, clients, bus)
	res, err := svc.ReconcileClient(context.Background(), "c1", today)

	require.NoError(t, err)
	// Five days out: 30-day and 7-day rules fire for both audiences.
	assert.Equal(t, 4, res.Created)
	assert.Equal(t, 4, res.Active)
	assert.Equal(t, 0, res.Deleted)

	require.Len(t, bus.events, 1)
	assert.Equal(t, "compliance.notification.created", bus.events[0].Type)
	assert.Equal(t, "4", bus.events[0].Payload["created"])
	store.AssertExpectations(t)
}

func TestReconcileClient_NotFound(t *testing.T) {
	clients := new(mocks.MockClientStore)
	clients.On("GetClient", mock.Anything, "missing").Return(nil, nil)

	svc := newTestComplianceService(
		new(mocks.MockComplianceStore), new(mocks.MockDocumentStore), clients, &recordingBus{})
	_, err := svc.ReconcileClient(context.Background(), "missing", time.Now())

	require.Error(t, err)
	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestReconcileClient_NoEventWhenNothingCreated(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)

	clients := new(mocks.MockClientStore)
	clients.On("GetClient", mock.Anything, "c1").Return(&storage.Client{ID: "c1", Name: "Acme"}, nil)

	docs := new(mocks.MockDocumentStore)
	docs.On("ListDocuments", mock.Anything, "c1").Return([]*storage.LegalDocument{
		{ID: "d1", ClientID: "c1", Name: "Trade License", ExpiryDate: today.AddDate(1, 0, 0)},
	}, nil)

	store := new(mocks.MockComplianceStore)
	store.On("InTx", mock.Anything).Return(nil)
	store.On("ListKeys", mock.Anything, "c1").Return([]expiry.Key{}, nil)

	bus := &recordingBus{}
	svc := newTestComplianceService(store, docs, clients, bus)
	res, err := svc.ReconcileClient(context.Background(), "c1", today)

	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Empty(t, bus.events)
}

func TestReconcileAll(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)

	clients := new(mocks.MockClientStore)
	clients.On("ListClients", mock.Anything).Return([]*storage.Client{
		{ID: "c1", Name: "Acme"},
		{ID: "c2", Name: "Globex"},
	}, nil)

	docs := new(mocks.MockDocumentStore)
	docs.On("ListDocuments", mock.Anything, "").Return([]*storage.LegalDocument{
		{ID: "d1", ClientID: "c1", Name: "Trade License", ExpiryDate: today.AddDate(0, 0, -2)},
		{ID: "d2", ClientID: "c2", Name: "Work Permit", ExpiryDate: today.AddDate(1, 0, 0)},
	}, nil)

	var messages []string
	store := new(mocks.MockComplianceStore)
	store.On("InTx", mock.Anything).Return(nil)
	store.On("Upsert", mock.Anything, mock.AnythingOfType("expiry.Notification")).
		Run(func(args mock.Arguments) {
			messages = append(messages, args.Get(1).(expiry.Notification).Message)
		}).
		Return(true, nil)
	store.On("ListKeys", mock.Anything, "").Return([]expiry.Key{
		{DocumentID: "gone", Audience: expiry.AudienceAdmin, Kind: expiry.KindExpired},
	}, nil)
	store.On("DeleteKeys", mock.Anything, mock.AnythingOfType("[]expiry.Key")).Return(nil)

	bus := &recordingBus{}
	svc := newTestComplianceService(store, docs, clients, bus)
	res, err := svc.ReconcileAll(context.Background(), today)

	require.NoError(t, err)
	// Expired document: EXPIRED for both audiences.
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 1, res.Deleted)
	// Message renders the owning client's name, joined from the client list.
	require.NotEmpty(t, messages)
	assert.Equal(t, "Trade License for Acme has expired.", messages[0])

	// Creations and retractions each publish their own event.
	require.Len(t, bus.events, 2)
	assert.Equal(t, "compliance.notification.created", bus.events[0].Type)
	assert.Equal(t, "compliance.notification.retracted", bus.events[1].Type)
	assert.Equal(t, "1", bus.events[1].Payload["deleted"])
	store.AssertExpectations(t)
}

func TestReconcileAll_TxError(t *testing.T) {
	clients := new(mocks.MockClientStore)
	clients.On("ListClients", mock.Anything).Return([]*storage.Client{}, nil)

	docs := new(mocks.MockDocumentStore)
	docs.On("ListDocuments", mock.Anything, "").Return([]*storage.LegalDocument{}, nil)

	store := new(mocks.MockComplianceStore)
	store.On("InTx", mock.Anything).Return(errors.New("tx begin failed"))

	svc := newTestComplianceService(store, docs, clients, &recordingBus{})
	_, err := svc.ReconcileAll(context.Background(), time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reconciling notifications")
}

func TestListNotifications_InvalidAudience(t *testing.T) {
	svc := newTestComplianceService(
		new(mocks.MockComplianceStore), new(mocks.MockDocumentStore),
		new(mocks.MockClientStore), &recordingBus{})
	_, err := svc.ListNotifications(context.Background(), "c1", expiry.Audience("EVERYONE"))

	require.Error(t, err)
	var validation *ValidationError
	assert.True(t, errors.As(err, &validation))
}

func TestListNotifications(t *testing.T) {
	store := new(mocks.MockComplianceStore)
	store.On("ListNotifications", mock.Anything, "c1", expiry.AudienceClient).
		Return([]storage.ComplianceNotification{
			{DocumentID: "d1", Audience: "CLIENT", Kind: "EXPIRY_7_DAYS", ClientID: "c1"},
		}, nil)

	svc := newTestComplianceService(
		store, new(mocks.MockDocumentStore), new(mocks.MockClientStore), &recordingBus{})
	rows, err := svc.ListNotifications(context.Background(), "c1", expiry.AudienceClient)

	require.NoError(t, err)
	assert.Len(t, rows, 1)
	store.AssertExpectations(t)
}
