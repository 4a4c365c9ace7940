package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/compliport/compliport/internal/storage"
)

// DocumentService defines the business logic interface for a client's legal
// documents. Renaming or re-dating a document takes effect on notifications
// at the next reconciliation pass, not here.
type DocumentService interface {
	ListDocuments(ctx context.Context, clientID string) ([]*storage.LegalDocument, error)
	GetDocument(ctx context.Context, id string) (*storage.LegalDocument, error)
	CreateDocument(ctx context.Context, clientID string, d *storage.LegalDocument) (*storage.LegalDocument, error)
	UpdateDocument(ctx context.Context, id string, d *storage.LegalDocument) (*storage.LegalDocument, error)
	DeleteDocument(ctx context.Context, id string) error
}

type documentService struct {
	repo    storage.DocumentStore
	clients storage.ClientStore
	logger  *slog.Logger
}

// NewDocumentService returns a new DocumentService backed by the given stores.
func NewDocumentService(repo storage.DocumentStore, clients storage.ClientStore, logger *slog.Logger) DocumentService {
	return &documentService{repo: repo, clients: clients, logger: logger}
}

func (s *documentService) ListDocuments(ctx context.Context, clientID string) ([]*storage.LegalDocument, error) {
	docs, err := s.repo.ListDocuments(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return docs, nil
}

func (s *documentService) GetDocument(ctx context.Context, id string) (*storage.LegalDocument, error) {
	doc, err := s.repo.GetDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting document %q: %w", id, err)
	}
	if doc == nil {
		return nil, &NotFoundError{Resource: "document", ID: id}
	}
	return doc, nil
}

func (s *documentService) CreateDocument(
	ctx context.Context, clientID string, d *storage.LegalDocument,
) (*storage.LegalDocument, error) {
	client, err := s.clients.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("looking up client: %w", err)
	}
	if client == nil {
		return nil, &NotFoundError{Resource: "client", ID: clientID}
	}

	d.ClientID = clientID
	if err := validateDocument(d); err != nil {
		return nil, err
	}

	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := s.repo.CreateDocument(ctx, d); err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	s.logger.Info("document created",
		"id", d.ID, "client_id", clientID, "name", d.Name, "expiry", d.ExpiryDate.Format("2006-01-02"))
	return d, nil
}

func (s *documentService) UpdateDocument(
	ctx context.Context, id string, d *storage.LegalDocument,
) (*storage.LegalDocument, error) {
	existing, err := s.repo.GetDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("looking up document: %w", err)
	}
	if existing == nil {
		return nil, &NotFoundError{Resource: "document", ID: id}
	}

	d.ID = id
	d.ClientID = existing.ClientID
	d.CreatedAt = existing.CreatedAt
	d.UpdatedAt = time.Now()

	if err := validateDocument(d); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDocument(ctx, d); err != nil {
		return nil, fmt.Errorf("updating document: %w", err)
	}

	s.logger.Info("document updated",
		"id", id, "name", d.Name, "expiry", d.ExpiryDate.Format("2006-01-02"))
	return d, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, id string) error {
	existing, err := s.repo.GetDocument(ctx, id)
	if err != nil {
		return fmt.Errorf("looking up document: %w", err)
	}
	if existing == nil {
		return &NotFoundError{Resource: "document", ID: id}
	}

	if err := s.repo.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("deleting document %q: %w", id, err)
	}
	s.logger.Info("document deleted", "id", id, "client_id", existing.ClientID)
	return nil
}

func validateDocument(d *storage.LegalDocument) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if d.ExpiryDate.IsZero() {
		return &ValidationError{Field: "expiry_date", Message: "expiry_date is required"}
	}
	// Expiry carries date precision only; normalize away any time-of-day.
	y, m, day := d.ExpiryDate.Date()
	d.ExpiryDate = time.Date(y, m, day, 0, 0, 0, 0, d.ExpiryDate.Location())
	return nil
}
