package storage

import "context"

// Holiday is one blocked calendar date for a client. Date is an ISO
// YYYY-MM-DD string; the schedule builder consumes it as-is.
type Holiday struct {
	ClientID string `json:"client_id"`
	Date     string `json:"date"`
	Label    string `json:"label"`
}

// HolidayStore defines the interface for a client's holiday calendar.
type HolidayStore interface {
	ListHolidays(ctx context.Context, clientID string) ([]Holiday, error)
	// ReplaceHolidays swaps a client's whole calendar in one transaction.
	ReplaceHolidays(ctx context.Context, clientID string, holidays []Holiday) error
}
