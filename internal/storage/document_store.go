package storage

import (
	"context"
	"time"
)

// LegalDocument is a dated compliance document owned by a client.
// ExpiryDate carries date precision only; time-of-day is always local midnight.
type LegalDocument struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	Name       string    `json:"name"`
	ExpiryDate time.Time `json:"expiry_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DocumentStore defines the interface for persisting legal documents.
type DocumentStore interface {
	// ListDocuments returns a client's documents; clientID "" returns all.
	ListDocuments(ctx context.Context, clientID string) ([]*LegalDocument, error)
	// GetDocument returns nil (no error) when the document does not exist.
	GetDocument(ctx context.Context, id string) (*LegalDocument, error)
	CreateDocument(ctx context.Context, d *LegalDocument) error
	UpdateDocument(ctx context.Context, d *LegalDocument) error
	DeleteDocument(ctx context.Context, id string) error
}
