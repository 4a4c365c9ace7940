package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/compliport/compliport/internal/storage"
)

// MockHolidayService is a mock implementation of service.HolidayService.
type MockHolidayService struct {
	mock.Mock
}

//nolint:revive
func (m *MockHolidayService) ListHolidays(ctx context.Context, clientID string) ([]storage.Holiday, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Holiday), args.Error(1)
}

//nolint:revive
func (m *MockHolidayService) ReplaceHolidays(ctx context.Context, clientID string, holidays []storage.Holiday) error {
	args := m.Called(ctx, clientID, holidays)
	return args.Error(0)
}

//nolint:revive
func (m *MockHolidayService) ImportCalendar(ctx context.Context, clientID string, src []byte) (int, error) {
	args := m.Called(ctx, clientID, src)
	return args.Int(0), args.Error(1)
}
