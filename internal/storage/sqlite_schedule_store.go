package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// SQLiteScheduleStore implements ScheduleStore backed by SQLite.
type SQLiteScheduleStore struct {
	db *sql.DB
}

// NewSQLiteScheduleStore returns a new SQLiteScheduleStore.
func NewSQLiteScheduleStore(db *sql.DB) *SQLiteScheduleStore {
	return &SQLiteScheduleStore{db: db}
}

func (s *SQLiteScheduleStore) ListEntries(ctx context.Context, clientID, category string) ([]ScheduleEntry, error) {
	query := `
		SELECT id, client_id, category, title, scheduled_for, label, created_at
		FROM schedule_entries WHERE client_id = ?`
	args := []any{clientID}
	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}
	query += " ORDER BY scheduled_for, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []ScheduleEntry
	for rows.Next() {
		var e ScheduleEntry
		if err := rows.Scan(&e.ID, &e.ClientID, &e.Category, &e.Title,
			&e.ScheduledFor, &e.Label, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning schedule row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule rows: %w", err)
	}
	return entries, nil
}

// ReplaceEntries swaps the (client, category) slice of the schedule in one
// transaction so a regenerate never leaves a partial mix of old and new rows.
func (s *SQLiteScheduleStore) ReplaceEntries(ctx context.Context, clientID, category string, entries []ScheduleEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schedule replace: %w", err)
	}

	rollback := func() {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("failed to rollback schedule replace: %v", rbErr)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM schedule_entries WHERE client_id = ? AND category = ?",
		clientID, category); err != nil {
		rollback()
		return fmt.Errorf("clearing schedule entries: %w", err)
	}

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO schedule_entries (client_id, category, title, scheduled_for, label, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			clientID, category, e.Title, e.ScheduledFor, e.Label, e.CreatedAt); err != nil {
			rollback()
			return fmt.Errorf("inserting schedule entry %q: %w", e.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schedule replace: %w", err)
	}
	return nil
}
