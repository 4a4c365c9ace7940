package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteClientStore implements ClientStore backed by SQLite.
type SQLiteClientStore struct {
	db *sql.DB
}

// NewSQLiteClientStore returns a new SQLiteClientStore.
func NewSQLiteClientStore(db *sql.DB) *SQLiteClientStore {
	return &SQLiteClientStore{db: db}
}

func (s *SQLiteClientStore) ListClients(ctx context.Context) ([]*Client, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, contact_email, created_at, updated_at
		FROM clients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying clients: %w", err)
	}
	defer rows.Close()

	var clients []*Client
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Name, &c.ContactEmail, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning client row: %w", err)
		}
		clients = append(clients, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client rows: %w", err)
	}
	return clients, nil
}

func (s *SQLiteClientStore) GetClient(ctx context.Context, id string) (*Client, error) {
	var c Client
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, contact_email, created_at, updated_at
		FROM clients WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.ContactEmail, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying client %q: %w", id, err)
	}
	return &c, nil
}

func (s *SQLiteClientStore) CreateClient(ctx context.Context, c *Client) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clients (id, name, contact_email, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.ContactEmail, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}
	return nil
}

func (s *SQLiteClientStore) UpdateClient(ctx context.Context, c *Client) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE clients SET name = ?, contact_email = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, c.ContactEmail, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("updating client %q: %w", c.ID, err)
	}
	return nil
}

func (s *SQLiteClientStore) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM clients WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting client %q: %w", id, err)
	}
	return nil
}
