package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/compliport/compliport/internal/schedule"
	"github.com/compliport/compliport/internal/storage"
)

// HolidayService manages a client's holiday calendar. The calendar is
// replaced wholesale on every write; there is no per-date CRUD.
type HolidayService interface {
	ListHolidays(ctx context.Context, clientID string) ([]storage.Holiday, error)
	ReplaceHolidays(ctx context.Context, clientID string, holidays []storage.Holiday) error
	// ImportCalendar replaces a client's calendar from a YAML document and
	// returns the number of imported dates.
	ImportCalendar(ctx context.Context, clientID string, src []byte) (int, error)
}

type holidayService struct {
	repo    storage.HolidayStore
	clients storage.ClientStore
	logger  *slog.Logger
}

// NewHolidayService returns a new HolidayService backed by the given stores.
func NewHolidayService(repo storage.HolidayStore, clients storage.ClientStore, logger *slog.Logger) HolidayService {
	return &holidayService{repo: repo, clients: clients, logger: logger}
}

func (s *holidayService) ListHolidays(ctx context.Context, clientID string) ([]storage.Holiday, error) {
	holidays, err := s.repo.ListHolidays(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	return holidays, nil
}

func (s *holidayService) ReplaceHolidays(ctx context.Context, clientID string, holidays []storage.Holiday) error {
	if err := s.requireClient(ctx, clientID); err != nil {
		return err
	}

	normalized, err := normalizeHolidays(clientID, holidays)
	if err != nil {
		return err
	}

	if err := s.repo.ReplaceHolidays(ctx, clientID, normalized); err != nil {
		return fmt.Errorf("replacing holidays: %w", err)
	}
	s.logger.Info("holiday calendar replaced", "client_id", clientID, "count", len(normalized))
	return nil
}

// holidayCalendar is the YAML shape holiday calendars are distributed in.
type holidayCalendar struct {
	Holidays []struct {
		Date  string `yaml:"date"`
		Label string `yaml:"label"`
	} `yaml:"holidays"`
}

func (s *holidayService) ImportCalendar(ctx context.Context, clientID string, src []byte) (int, error) {
	if err := s.requireClient(ctx, clientID); err != nil {
		return 0, err
	}

	var cal holidayCalendar
	if err := yaml.Unmarshal(src, &cal); err != nil {
		return 0, &ValidationError{Field: "calendar", Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	if len(cal.Holidays) == 0 {
		return 0, &ValidationError{Field: "calendar", Message: "calendar contains no holidays"}
	}

	holidays := make([]storage.Holiday, 0, len(cal.Holidays))
	for _, h := range cal.Holidays {
		holidays = append(holidays, storage.Holiday{Date: h.Date, Label: h.Label})
	}
	normalized, err := normalizeHolidays(clientID, holidays)
	if err != nil {
		return 0, err
	}

	if err := s.repo.ReplaceHolidays(ctx, clientID, normalized); err != nil {
		return 0, fmt.Errorf("replacing holidays: %w", err)
	}
	s.logger.Info("holiday calendar imported", "client_id", clientID, "count", len(normalized))
	return len(normalized), nil
}

func (s *holidayService) requireClient(ctx context.Context, clientID string) error {
	client, err := s.clients.GetClient(ctx, clientID)
	if err != nil {
		return fmt.Errorf("looking up client: %w", err)
	}
	if client == nil {
		return &NotFoundError{Resource: "client", ID: clientID}
	}
	return nil
}

// normalizeHolidays canonicalizes every date to ISO form and de-duplicates.
// A date that parses in none of the accepted formats fails the whole write;
// unlike the schedule builder, a calendar import should not silently shrink.
func normalizeHolidays(clientID string, holidays []storage.Holiday) ([]storage.Holiday, error) {
	seen := make(map[string]struct{}, len(holidays))
	out := make([]storage.Holiday, 0, len(holidays))
	for _, h := range holidays {
		d, ok := schedule.ParseDate(h.Date)
		if !ok {
			return nil, &ValidationError{Field: "date", Message: fmt.Sprintf("unparseable date %q", h.Date)}
		}
		iso := d.Format("2006-01-02")
		if _, dup := seen[iso]; dup {
			continue
		}
		seen[iso] = struct{}{}
		out = append(out, storage.Holiday{
			ClientID: clientID,
			Date:     iso,
			Label:    strings.TrimSpace(h.Label),
		})
	}
	return out, nil
}
