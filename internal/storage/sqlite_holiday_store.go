package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// SQLiteHolidayStore implements HolidayStore backed by SQLite.
type SQLiteHolidayStore struct {
	db *sql.DB
}

// NewSQLiteHolidayStore returns a new SQLiteHolidayStore.
func NewSQLiteHolidayStore(db *sql.DB) *SQLiteHolidayStore {
	return &SQLiteHolidayStore{db: db}
}

func (s *SQLiteHolidayStore) ListHolidays(ctx context.Context, clientID string) ([]Holiday, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT client_id, date, label
		FROM holidays WHERE client_id = ? ORDER BY date`, clientID)
	if err != nil {
		return nil, fmt.Errorf("querying holidays: %w", err)
	}
	defer rows.Close()

	var holidays []Holiday
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.ClientID, &h.Date, &h.Label); err != nil {
			return nil, fmt.Errorf("scanning holiday row: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holiday rows: %w", err)
	}
	return holidays, nil
}

// ReplaceHolidays swaps the client's calendar atomically. The primary key on
// (client_id, date) absorbs duplicate dates in the input.
func (s *SQLiteHolidayStore) ReplaceHolidays(ctx context.Context, clientID string, holidays []Holiday) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin holiday replace: %w", err)
	}

	rollback := func() {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("failed to rollback holiday replace: %v", rbErr)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM holidays WHERE client_id = ?", clientID); err != nil {
		rollback()
		return fmt.Errorf("clearing holidays: %w", err)
	}

	for _, h := range holidays {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO holidays (client_id, date, label) VALUES (?, ?, ?)",
			clientID, h.Date, h.Label); err != nil {
			rollback()
			return fmt.Errorf("inserting holiday %q: %w", h.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit holiday replace: %w", err)
	}
	return nil
}
