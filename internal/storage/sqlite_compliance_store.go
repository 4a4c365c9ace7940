package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/compliport/compliport/internal/expiry"
)

// dbtx is the subset of *sql.DB and *sql.Tx the compliance queries need.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// SQLiteComplianceStore implements ComplianceNotificationStore backed by SQLite.
type SQLiteComplianceStore struct {
	db *sql.DB
}

// NewSQLiteComplianceStore returns a new SQLiteComplianceStore.
func NewSQLiteComplianceStore(db *sql.DB) *SQLiteComplianceStore {
	return &SQLiteComplianceStore{db: db}
}

// Upsert creates the notification if absent. INSERT OR IGNORE rides on the
// primary key over (document_id, audience, kind), so an existing row's
// content is never rewritten.
func (s *SQLiteComplianceStore) Upsert(ctx context.Context, n expiry.Notification) (bool, error) {
	return upsertNotification(ctx, s.db, n)
}

func (s *SQLiteComplianceStore) ListKeys(ctx context.Context, clientID string) ([]expiry.Key, error) {
	return listNotificationKeys(ctx, s.db, clientID)
}

func (s *SQLiteComplianceStore) DeleteKeys(ctx context.Context, keys []expiry.Key) error {
	return deleteNotificationKeys(ctx, s.db, keys)
}

// InTx runs fn against a transaction-bound expiry.Store.
func (s *SQLiteComplianceStore) InTx(ctx context.Context, fn func(expiry.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reconcile transaction: %w", err)
	}

	if err := fn(&txComplianceStore{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("failed to rollback reconcile transaction: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reconcile transaction: %w", err)
	}
	return nil
}

func (s *SQLiteComplianceStore) ListNotifications(ctx context.Context, clientID string, audience expiry.Audience) ([]ComplianceNotification, error) {
	query := `
		SELECT document_id, audience, kind, client_id, title, message, notify_at, created_at
		FROM compliance_notifications WHERE audience = ?`
	args := []any{string(audience)}
	if clientID != "" {
		query += " AND client_id = ?"
		args = append(args, clientID)
	}
	query += " ORDER BY notify_at DESC, document_id, kind"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	var list []ComplianceNotification
	for rows.Next() {
		var n ComplianceNotification
		if err := rows.Scan(&n.DocumentID, &n.Audience, &n.Kind, &n.ClientID,
			&n.Title, &n.Message, &n.NotifyAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification row: %w", err)
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notification rows: %w", err)
	}
	return list, nil
}

// txComplianceStore is the transaction-bound view handed to reconciliation.
type txComplianceStore struct {
	tx *sql.Tx
}

func (t *txComplianceStore) Upsert(ctx context.Context, n expiry.Notification) (bool, error) {
	return upsertNotification(ctx, t.tx, n)
}

func (t *txComplianceStore) ListKeys(ctx context.Context, clientID string) ([]expiry.Key, error) {
	return listNotificationKeys(ctx, t.tx, clientID)
}

func (t *txComplianceStore) DeleteKeys(ctx context.Context, keys []expiry.Key) error {
	return deleteNotificationKeys(ctx, t.tx, keys)
}

func upsertNotification(ctx context.Context, q dbtx, n expiry.Notification) (bool, error) {
	res, err := q.ExecContext(ctx, `
		INSERT OR IGNORE INTO compliance_notifications
			(document_id, audience, kind, client_id, title, message, notify_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.DocumentID, string(n.Audience), string(n.Kind), n.ClientID,
		n.Title, n.Message, n.NotifyAt.Format(dateLayout), time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("inserting notification: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking insert result: %w", err)
	}
	return affected > 0, nil
}

func listNotificationKeys(ctx context.Context, q dbtx, clientID string) ([]expiry.Key, error) {
	query := "SELECT document_id, audience, kind FROM compliance_notifications"
	args := []any{}
	if clientID != "" {
		query += " WHERE client_id = ?"
		args = append(args, clientID)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying notification keys: %w", err)
	}
	defer rows.Close()

	var keys []expiry.Key
	for rows.Next() {
		var docID, audience, kind string
		if err := rows.Scan(&docID, &audience, &kind); err != nil {
			return nil, fmt.Errorf("scanning notification key: %w", err)
		}
		keys = append(keys, expiry.Key{
			DocumentID: docID,
			Audience:   expiry.Audience(audience),
			Kind:       expiry.Kind(kind),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notification keys: %w", err)
	}
	return keys, nil
}

func deleteNotificationKeys(ctx context.Context, q dbtx, keys []expiry.Key) error {
	if len(keys) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys)*3)
	for _, k := range keys {
		placeholders = append(placeholders, "(?, ?, ?)")
		args = append(args, k.DocumentID, string(k.Audience), string(k.Kind))
	}

	query := fmt.Sprintf(`
		DELETE FROM compliance_notifications
		WHERE (document_id, audience, kind) IN (VALUES %s)`,
		strings.Join(placeholders, ", "))

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting notification keys: %w", err)
	}
	return nil
}
