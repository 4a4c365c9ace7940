// Package scheduler runs the daily expiry-notification sweep. Clients are
// reconciled concurrently under a semaphore; the sweep outcome is published
// on the event bus so the notification handler can email admins.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/compliport/compliport/internal/eventbus"
	"github.com/compliport/compliport/internal/expiry"
	"github.com/compliport/compliport/internal/storage"
)

// EventPublisher allows the scheduler to emit events without depending on a
// concrete event bus implementation.
type EventPublisher interface {
	Publish(eventType string, payload map[string]string)
}

// ClientLister provides the clients the sweep iterates over.
type ClientLister interface {
	ListClients(ctx context.Context) ([]*storage.Client, error)
}

// Reconciler reconciles one client's expiry notifications.
type Reconciler interface {
	ReconcileClient(ctx context.Context, clientID string, today time.Time) (expiry.Result, error)
}

// Config holds the scheduler configuration.
type Config struct {
	Clients    ClientLister
	Compliance Reconciler
	Logger     *slog.Logger
	// ReconcileAt is the local "HH:MM" the daily sweep fires at.
	ReconcileAt    string
	MaxConcurrency int
	// EventPublisher is optional. When set, sweep outcomes are published.
	EventPublisher EventPublisher
}

// Scheduler manages the daily reconciliation sweep using gocron.
type Scheduler struct {
	cron      gocron.Scheduler
	cfg       Config
	semaphore chan struct{}
	logger    *slog.Logger
}

// New creates a new Scheduler.
func New(cfg Config) (*Scheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("creating gocron scheduler: %w", err)
	}

	maxConc := cfg.MaxConcurrency
	if maxConc <= 0 {
		maxConc = 3
	}

	return &Scheduler{
		cron:      cron,
		cfg:       cfg,
		semaphore: make(chan struct{}, maxConc),
		logger:    cfg.Logger,
	}, nil
}

// Start registers the daily sweep job and starts the gocron scheduler.
func (s *Scheduler) Start(_ context.Context) error {
	hour, minute, err := parseAtTime(s.cfg.ReconcileAt)
	if err != nil {
		return fmt.Errorf("parsing reconcile time: %w", err)
	}

	_, err = s.cron.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			s.runSweep(ctx)
		}),
	)
	if err != nil {
		return fmt.Errorf("scheduling daily sweep: %w", err)
	}

	s.cron.Start()
	s.logger.Info("reconcile scheduler started", "at", s.cfg.ReconcileAt)
	return nil
}

// Stop shuts down the gocron scheduler.
func (s *Scheduler) Stop() error {
	return s.cron.Shutdown()
}

// runSweep executes one sweep and publishes the outcome.
func (s *Scheduler) runSweep(ctx context.Context) {
	start := time.Now()
	res, err := s.Sweep(ctx, start)
	if err != nil {
		s.logger.Error("reconcile sweep failed", "error", err)
		s.publish(eventbus.EventReconcileFailed, map[string]string{
			"error": err.Error(),
		})
		return
	}

	s.logger.Info("reconcile sweep completed",
		"created", res.Created, "deleted", res.Deleted, "active", res.Active,
		"duration", time.Since(start).String())
	s.publish(eventbus.EventReconcileCompleted, map[string]string{
		"created":  strconv.Itoa(res.Created),
		"deleted":  strconv.Itoa(res.Deleted),
		"active":   strconv.Itoa(res.Active),
		"duration": time.Since(start).String(),
	})
}

// Sweep reconciles every client as of today, at most MaxConcurrency clients
// at a time, and returns the aggregated result. A client failure does not
// stop the sweep; the first error is reported after all clients finish.
func (s *Scheduler) Sweep(ctx context.Context, today time.Time) (expiry.Result, error) {
	clients, err := s.cfg.Clients.ListClients(ctx)
	if err != nil {
		return expiry.Result{}, fmt.Errorf("listing clients: %w", err)
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		total    expiry.Result
		firstErr error
	)
	for _, c := range clients {
		wg.Add(1)
		s.semaphore <- struct{}{}
		go func(clientID, name string) {
			defer wg.Done()
			defer func() { <-s.semaphore }()

			res, rerr := s.cfg.Compliance.ReconcileClient(ctx, clientID, today)

			mu.Lock()
			defer mu.Unlock()
			if rerr != nil {
				s.logger.Error("client reconcile failed", "client_id", clientID, "client", name, "error", rerr)
				if firstErr == nil {
					firstErr = fmt.Errorf("reconciling client %q: %w", clientID, rerr)
				}
				return
			}
			total.Created += res.Created
			total.Deleted += res.Deleted
			total.Active += res.Active
		}(c.ID, c.Name)
	}
	wg.Wait()

	if firstErr != nil {
		return total, firstErr
	}
	return total, nil
}

func (s *Scheduler) publish(eventType string, payload map[string]string) {
	if s.cfg.EventPublisher == nil {
		return
	}
	s.cfg.EventPublisher.Publish(eventType, payload)
}

// parseAtTime parses an "HH:MM" string into hour and minute components.
func parseAtTime(at string) (hour, minute uint, err error) {
	parts := strings.Split(at, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid at-time format: %s", at)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing hour: %w", err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing minute: %w", err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("at-time values out of range: %d:%d", h, m)
	}
	return uint(h), uint(m), nil //nolint:gosec // bounds checked above
}
