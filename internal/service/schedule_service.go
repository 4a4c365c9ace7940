package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/compliport/compliport/internal/schedule"
	"github.com/compliport/compliport/internal/storage"
)

const defaultCountPerTitle = 4

// ScheduleService generates and serves compliance schedules. Generated
// compliance schedules are persisted per (client, category); training
// calendars are computed on demand and never stored.
type ScheduleService interface {
	// GenerateCompliance builds a schedule for the given titles anchored at
	// from, using the client's holiday calendar, and replaces the persisted
	// (client, category) slice with the result.
	GenerateCompliance(
		ctx context.Context, clientID, category string, titles []string, countPerTitle int, from time.Time,
	) ([]storage.ScheduleEntry, error)
	// TrainingCalendar computes the one-year training calendar for the given
	// names without persisting it.
	TrainingCalendar(
		ctx context.Context, clientID string, names []string, mode schedule.CalendarMode, now time.Time,
	) ([]schedule.Entry, error)
	// ListSchedule returns a client's persisted rows; category "" lists all.
	ListSchedule(ctx context.Context, clientID, category string) ([]storage.ScheduleEntry, error)
}

type scheduleService struct {
	repo     storage.ScheduleStore
	holidays storage.HolidayStore
	clients  storage.ClientStore
	logger   *slog.Logger
}

// NewScheduleService returns a new ScheduleService backed by the given stores.
func NewScheduleService(
	repo storage.ScheduleStore,
	holidays storage.HolidayStore,
	clients storage.ClientStore,
	logger *slog.Logger,
) ScheduleService {
	return &scheduleService{repo: repo, holidays: holidays, clients: clients, logger: logger}
}

func (s *scheduleService) GenerateCompliance(
	ctx context.Context, clientID, category string, titles []string, countPerTitle int, from time.Time,
) ([]storage.ScheduleEntry, error) {
	if err := s.requireClient(ctx, clientID); err != nil {
		return nil, err
	}
	if category == "" {
		return nil, &ValidationError{Field: "category", Message: "category is required"}
	}
	if countPerTitle <= 0 {
		countPerTitle = defaultCountPerTitle
	}

	dates, err := s.holidayDates(ctx, clientID)
	if err != nil {
		return nil, err
	}

	generated := schedule.Generate(titles, dates, countPerTitle, clientID, from)
	if len(generated) == 0 {
		return nil, &ValidationError{Field: "titles", Message: "at least one non-empty title is required"}
	}

	rows := make([]storage.ScheduleEntry, 0, len(generated))
	for _, e := range generated {
		rows = append(rows, storage.ScheduleEntry{
			ClientID:     clientID,
			Category:     category,
			Title:        e.Title,
			ScheduledFor: e.ISO,
			Label:        e.Label,
		})
	}

	if err := s.repo.ReplaceEntries(ctx, clientID, category, rows); err != nil {
		return nil, fmt.Errorf("persisting schedule: %w", err)
	}

	s.logger.Info("compliance schedule generated",
		"client_id", clientID, "category", category, "titles", len(titles), "entries", len(rows))

	// Re-read so callers see store-assigned row IDs and timestamps.
	persisted, err := s.repo.ListEntries(ctx, clientID, category)
	if err != nil {
		return nil, fmt.Errorf("reading back schedule: %w", err)
	}
	return persisted, nil
}

func (s *scheduleService) TrainingCalendar(
	ctx context.Context, clientID string, names []string, mode schedule.CalendarMode, now time.Time,
) ([]schedule.Entry, error) {
	if err := s.requireClient(ctx, clientID); err != nil {
		return nil, err
	}
	switch mode {
	case schedule.ModeReference, schedule.ModeFuture:
	default:
		return nil, &ValidationError{Field: "mode", Message: "mode must be reference or future"}
	}

	dates, err := s.holidayDates(ctx, clientID)
	if err != nil {
		return nil, err
	}

	entries := schedule.GenerateCalendar(names, dates, clientID, now, mode)
	if len(entries) == 0 {
		return nil, &ValidationError{Field: "names", Message: "at least one non-empty name is required"}
	}
	return entries, nil
}

func (s *scheduleService) ListSchedule(ctx context.Context, clientID, category string) ([]storage.ScheduleEntry, error) {
	entries, err := s.repo.ListEntries(ctx, clientID, category)
	if err != nil {
		return nil, fmt.Errorf("listing schedule: %w", err)
	}
	return entries, nil
}

func (s *scheduleService) requireClient(ctx context.Context, clientID string) error {
	client, err := s.clients.GetClient(ctx, clientID)
	if err != nil {
		return fmt.Errorf("looking up client: %w", err)
	}
	if client == nil {
		return &NotFoundError{Resource: "client", ID: clientID}
	}
	return nil
}

func (s *scheduleService) holidayDates(ctx context.Context, clientID string) ([]string, error) {
	holidays, err := s.holidays.ListHolidays(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("loading holidays: %w", err)
	}
	dates := make([]string, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}
	return dates, nil
}
