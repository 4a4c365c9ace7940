package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compliport/compliport/internal/expiry"
	"github.com/compliport/compliport/internal/storage"
)

type stubClients struct {
	clients []*storage.Client
	err     error
}

func (s *stubClients) ListClients(context.Context) ([]*storage.Client, error) {
	return s.clients, s.err
}

type stubReconciler struct {
	mu      sync.Mutex
	calls   []string
	results map[string]expiry.Result
	errs    map[string]error
}

func (s *stubReconciler) ReconcileClient(_ context.Context, clientID string, _ time.Time) (expiry.Result, error) {
	s.mu.Lock()
	s.calls = append(s.calls, clientID)
	s.mu.Unlock()
	if err := s.errs[clientID]; err != nil {
		return expiry.Result{}, err
	}
	return s.results[clientID], nil
}

func newTestScheduler(t *testing.T, clients ClientLister, rec Reconciler) *Scheduler {
	t.Helper()
	s, err := New(Config{
		Clients:        clients,
		Compliance:     rec,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		ReconcileAt:    "06:00",
		MaxConcurrency: 2,
	})
	require.NoError(t, err)
	return s
}

func TestSweep_AggregatesAcrossClients(t *testing.T) {
	clients := &stubClients{clients: []*storage.Client{
		{ID: "c1", Name: "Acme"},
		{ID: "c2", Name: "Globex"},
		{ID: "c3", Name: "Initech"},
	}}
	rec := &stubReconciler{results: map[string]expiry.Result{
		"c1": {Created: 2, Deleted: 1, Active: 5},
		"c2": {Created: 0, Deleted: 0, Active: 3},
		"c3": {Created: 4, Deleted: 2, Active: 4},
	}}

	s := newTestScheduler(t, clients, rec)
	res, err := s.Sweep(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, expiry.Result{Created: 6, Deleted: 3, Active: 12}, res)
	assert.Len(t, rec.calls, 3)
}

func TestSweep_ClientErrorDoesNotStopOthers(t *testing.T) {
	clients := &stubClients{clients: []*storage.Client{
		{ID: "c1", Name: "Acme"},
		{ID: "c2", Name: "Globex"},
	}}
	rec := &stubReconciler{
		results: map[string]expiry.Result{"c2": {Created: 1, Active: 1}},
		errs:    map[string]error{"c1": errors.New("db locked")},
	}

	s := newTestScheduler(t, clients, rec)
	res, err := s.Sweep(context.Background(), time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `reconciling client "c1"`)
	// The healthy client was still reconciled.
	assert.Len(t, rec.calls, 2)
	assert.Equal(t, 1, res.Created)
}

func TestSweep_ListError(t *testing.T) {
	s := newTestScheduler(t, &stubClients{err: errors.New("db down")}, &stubReconciler{})
	_, err := s.Sweep(context.Background(), time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing clients")
}

func TestParseAtTime(t *testing.T) {
	tests := []struct {
		in       string
		hour     uint
		minute   uint
		wantErr  bool
	}{
		{in: "06:00", hour: 6},
		{in: "23:59", hour: 23, minute: 59},
		{in: "0:5", minute: 5},
		{in: "24:00", wantErr: true},
		{in: "06:60", wantErr: true},
		{in: "six am", wantErr: true},
		{in: "06", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, err := parseAtTime(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, h)
			assert.Equal(t, tt.minute, m)
		})
	}
}
