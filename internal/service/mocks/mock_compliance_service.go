package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/compliport/compliport/internal/expiry"
	"github.com/compliport/compliport/internal/storage"
)

// MockComplianceService is a mock implementation of service.ComplianceService.
type MockComplianceService struct {
	mock.Mock
}

//nolint:revive
func (m *MockComplianceService) ReconcileClient(ctx context.Context, clientID string, today time.Time) (expiry.Result, error) {
	args := m.Called(ctx, clientID, today)
	return args.Get(0).(expiry.Result), args.Error(1)
}

//nolint:revive
func (m *MockComplianceService) ReconcileAll(ctx context.Context, today time.Time) (expiry.Result, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(expiry.Result), args.Error(1)
}

//nolint:revive
func (m *MockComplianceService) ListNotifications(
	ctx context.Context, clientID string, audience expiry.Audience,
) ([]storage.ComplianceNotification, error) {
	args := m.Called(ctx, clientID, audience)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ComplianceNotification), args.Error(1)
}
