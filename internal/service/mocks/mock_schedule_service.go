package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/compliport/compliport/internal/schedule"
	"github.com/compliport/compliport/internal/storage"
)

// MockScheduleService is a mock implementation of service.ScheduleService.
type MockScheduleService struct {
	mock.Mock
}

//nolint:revive
func (m *MockScheduleService) GenerateCompliance(
	ctx context.Context, clientID, category string, titles []string, countPerTitle int, from time.Time,
) ([]storage.ScheduleEntry, error) {
	args := m.Called(ctx, clientID, category, titles, countPerTitle, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ScheduleEntry), args.Error(1)
}

//nolint:revive
func (m *MockScheduleService) TrainingCalendar(
	ctx context.Context, clientID string, names []string, mode schedule.CalendarMode, now time.Time,
) ([]schedule.Entry, error) {
	args := m.Called(ctx, clientID, names, mode, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schedule.Entry), args.Error(1)
}

//nolint:revive
func (m *MockScheduleService) ListSchedule(ctx context.Context, clientID, category string) ([]storage.ScheduleEntry, error) {
	args := m.Called(ctx, clientID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ScheduleEntry), args.Error(1)
}
