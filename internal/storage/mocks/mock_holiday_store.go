package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/compliport/compliport/internal/storage"
)

// MockHolidayStore is a mock implementation of storage.HolidayStore.
type MockHolidayStore struct {
	mock.Mock
}

//nolint:revive
func (m *MockHolidayStore) ListHolidays(ctx context.Context, clientID string) ([]storage.Holiday, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Holiday), args.Error(1)
}

//nolint:revive
func (m *MockHolidayStore) ReplaceHolidays(ctx context.Context, clientID string, holidays []storage.Holiday) error {
	args := m.Called(ctx, clientID, holidays)
	return args.Error(0)
}
