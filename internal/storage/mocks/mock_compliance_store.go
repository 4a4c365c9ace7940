package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/compliport/compliport/internal/expiry"
	"github.com/compliport/compliport/internal/storage"
)

// MockComplianceStore is a mock implementation of storage.ComplianceNotificationStore.
type MockComplianceStore struct {
	mock.Mock
}

//nolint:revive
func (m *MockComplianceStore) Upsert(ctx context.Context, n expiry.Notification) (bool, error) {
	args := m.Called(ctx, n)
	return args.Bool(0), args.Error(1)
}

//nolint:revive
func (m *MockComplianceStore) ListKeys(ctx context.Context, clientID string) ([]expiry.Key, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]expiry.Key), args.Error(1)
}

//nolint:revive
func (m *MockComplianceStore) DeleteKeys(ctx context.Context, keys []expiry.Key) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

// InTx runs fn against the mock itself, so expectations set on the mock
// cover the transactional path too.
func (m *MockComplianceStore) InTx(ctx context.Context, fn func(expiry.Store) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

//nolint:revive
func (m *MockComplianceStore) ListNotifications(ctx context.Context, clientID string, audience expiry.Audience) ([]storage.ComplianceNotification, error) {
	args := m.Called(ctx, clientID, audience)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ComplianceNotification), args.Error(1)
}
