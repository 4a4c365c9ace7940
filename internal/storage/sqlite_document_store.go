package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// expiry dates are stored as ISO date strings; time-of-day is meaningless.
const dateLayout = "2006-01-02"

// SQLiteDocumentStore implements DocumentStore backed by SQLite.
type SQLiteDocumentStore struct {
	db *sql.DB
}

// NewSQLiteDocumentStore returns a new SQLiteDocumentStore.
func NewSQLiteDocumentStore(db *sql.DB) *SQLiteDocumentStore {
	return &SQLiteDocumentStore{db: db}
}

func (s *SQLiteDocumentStore) ListDocuments(ctx context.Context, clientID string) ([]*LegalDocument, error) {
	query := `
		SELECT id, client_id, name, expiry_date, created_at, updated_at
		FROM legal_documents`
	args := []any{}
	if clientID != "" {
		query += " WHERE client_id = ?"
		args = append(args, clientID)
	}
	query += " ORDER BY expiry_date"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []*LegalDocument
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating document rows: %w", err)
	}
	return docs, nil
}

func (s *SQLiteDocumentStore) GetDocument(ctx context.Context, id string) (*LegalDocument, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, client_id, name, expiry_date, created_at, updated_at
		FROM legal_documents WHERE id = ?`, id)

	d, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying document %q: %w", id, err)
	}
	return d, nil
}

func (s *SQLiteDocumentStore) CreateDocument(ctx context.Context, d *LegalDocument) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO legal_documents (id, client_id, name, expiry_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.ClientID, d.Name, d.ExpiryDate.Format(dateLayout), d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	return nil
}

func (s *SQLiteDocumentStore) UpdateDocument(ctx context.Context, d *LegalDocument) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE legal_documents SET name = ?, expiry_date = ?, updated_at = ?
		WHERE id = ?`,
		d.Name, d.ExpiryDate.Format(dateLayout), d.UpdatedAt, d.ID)
	if err != nil {
		return fmt.Errorf("updating document %q: %w", d.ID, err)
	}
	return nil
}

func (s *SQLiteDocumentStore) DeleteDocument(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM legal_documents WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting document %q: %w", id, err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(sc scanner) (*LegalDocument, error) {
	var d LegalDocument
	var expiryISO string
	if err := sc.Scan(&d.ID, &d.ClientID, &d.Name, &expiryISO, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	exp, err := time.ParseInLocation(dateLayout, expiryISO, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parsing expiry date %q: %w", expiryISO, err)
	}
	d.ExpiryDate = exp
	return &d, nil
}
