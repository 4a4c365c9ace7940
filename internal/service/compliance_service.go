package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/compliport/compliport/internal/eventbus"
	"github.com/compliport/compliport/internal/expiry"
	"github.com/compliport/compliport/internal/storage"
)

var (
	reconcileRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "compliport_reconcile_runs_total",
		Help: "Reconciliation passes by outcome.",
	}, []string{"outcome"})
	notificationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compliport_notifications_created_total",
		Help: "Expiry notifications created by reconciliation.",
	})
	notificationsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compliport_notifications_deleted_total",
		Help: "Stale expiry notifications deleted by reconciliation.",
	})
)

// ComplianceService drives expiry-notification reconciliation and serves the
// persisted notification feeds.
type ComplianceService interface {
	// ReconcileClient reconciles one client's notifications as of today.
	ReconcileClient(ctx context.Context, clientID string, today time.Time) (expiry.Result, error)
	// ReconcileAll reconciles every client in a single pass.
	ReconcileAll(ctx context.Context, today time.Time) (expiry.Result, error)
	// ListNotifications returns the persisted feed for an audience, scoped to
	// clientID when non-empty.
	ListNotifications(ctx context.Context, clientID string, audience expiry.Audience) ([]storage.ComplianceNotification, error)
}

type complianceService struct {
	store   storage.ComplianceNotificationStore
	docs    storage.DocumentStore
	clients storage.ClientStore
	bus     EventPublisher
	logger  *slog.Logger
}

// NewComplianceService returns a new ComplianceService.
func NewComplianceService(
	store storage.ComplianceNotificationStore,
	docs storage.DocumentStore,
	clients storage.ClientStore,
	bus EventPublisher,
	logger *slog.Logger,
) ComplianceService {
	return &complianceService{store: store, docs: docs, clients: clients, bus: bus, logger: logger}
}

func (s *complianceService) ReconcileClient(
	ctx context.Context, clientID string, today time.Time,
) (expiry.Result, error) {
	client, err := s.clients.GetClient(ctx, clientID)
	if err != nil {
		return expiry.Result{}, fmt.Errorf("looking up client: %w", err)
	}
	if client == nil {
		return expiry.Result{}, &NotFoundError{Resource: "client", ID: clientID}
	}

	docs, err := s.loadDocuments(ctx, clientID, map[string]string{clientID: client.Name})
	if err != nil {
		return expiry.Result{}, err
	}
	return s.reconcile(ctx, docs, today, clientID)
}

func (s *complianceService) ReconcileAll(ctx context.Context, today time.Time) (expiry.Result, error) {
	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return expiry.Result{}, fmt.Errorf("listing clients: %w", err)
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}

	docs, err := s.loadDocuments(ctx, "", names)
	if err != nil {
		return expiry.Result{}, err
	}
	return s.reconcile(ctx, docs, today, "")
}

func (s *complianceService) ListNotifications(
	ctx context.Context, clientID string, audience expiry.Audience,
) ([]storage.ComplianceNotification, error) {
	switch audience {
	case expiry.AudienceAdmin, expiry.AudienceClient:
	default:
		return nil, &ValidationError{Field: "audience", Message: "audience must be ADMIN or CLIENT"}
	}
	rows, err := s.store.ListNotifications(ctx, clientID, audience)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return rows, nil
}

// loadDocuments reads documents (all clients when clientID is empty) and
// joins in the owning client's name for message rendering.
func (s *complianceService) loadDocuments(
	ctx context.Context, clientID string, names map[string]string,
) ([]expiry.Document, error) {
	rows, err := s.docs.ListDocuments(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	docs := make([]expiry.Document, 0, len(rows))
	for _, d := range rows {
		docs = append(docs, expiry.Document{
			ID:         d.ID,
			ClientID:   d.ClientID,
			Name:       d.Name,
			ClientName: names[d.ClientID],
			ExpiryDate: d.ExpiryDate,
		})
	}
	return docs, nil
}

// reconcile runs one full pass inside a single store transaction, then
// reports the outcome to metrics, the event bus, and the log.
func (s *complianceService) reconcile(
	ctx context.Context, docs []expiry.Document, today time.Time, scope string,
) (expiry.Result, error) {
	var res expiry.Result
	err := s.store.InTx(ctx, func(tx expiry.Store) error {
		var txErr error
		res, txErr = expiry.Reconcile(ctx, tx, docs, today, scope)
		return txErr
	})
	if err != nil {
		reconcileRuns.WithLabelValues("failed").Inc()
		return expiry.Result{}, fmt.Errorf("reconciling notifications: %w", err)
	}

	reconcileRuns.WithLabelValues("completed").Inc()
	notificationsCreated.Add(float64(res.Created))
	notificationsDeleted.Add(float64(res.Deleted))

	if res.Created > 0 {
		s.bus.Publish(eventbus.EventNotificationCreated, map[string]string{
			"client_id": scope,
			"created":   strconv.Itoa(res.Created),
			"active":    strconv.Itoa(res.Active),
		})
	}
	if res.Deleted > 0 {
		s.bus.Publish(eventbus.EventNotificationRetracted, map[string]string{
			"client_id": scope,
			"deleted":   strconv.Itoa(res.Deleted),
			"active":    strconv.Itoa(res.Active),
		})
	}

	s.logger.Info("reconciliation pass completed",
		"scope", scope, "documents", len(docs),
		"created", res.Created, "deleted", res.Deleted, "active", res.Active)
	return res, nil
}
