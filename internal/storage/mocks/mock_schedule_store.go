package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/compliport/compliport/internal/storage"
)

// MockScheduleStore is a mock implementation of storage.ScheduleStore.
type MockScheduleStore struct {
	mock.Mock
}

//nolint:revive
func (m *MockScheduleStore) ListEntries(ctx context.Context, clientID, category string) ([]storage.ScheduleEntry, error) {
	args := m.Called(ctx, clientID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ScheduleEntry), args.Error(1)
}

//nolint:revive
func (m *MockScheduleStore) ReplaceEntries(ctx context.Context, clientID, category string, entries []storage.ScheduleEntry) error {
	args := m.Called(ctx, clientID, category, entries)
	return args.Error(0)
}
