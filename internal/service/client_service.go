// Package service contains the business logic layer sitting between the HTTP
// handlers and the storage interfaces.
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

// ClientService defines the business logic interface for managing clients.
type ClientService interface {
	ListClients(ctx context.Context) ([]*storage.Client, error)
	GetClient(ctx context.Context, id string) (*storage.Client, error)
	CreateClient(ctx context.Context, c *storage.Client) (*storage.Client, error)
	UpdateClient(ctx context.Context, id string, c *storage.Client) (*storage.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

type clientService struct {
	repo   storage.ClientStore
	logger *slog.Logger
}

// NewClientService returns a new ClientService backed by the given ClientStore.
func NewClientService(repo storage.ClientStore, logger *slog.Logger) ClientService {
	return &clientService{repo: repo, logger: logger}
}

func (s *clientService) ListClients(ctx context.Context) ([]*storage.Client, error) {
	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (*storage.Client, error) {
	client, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting client %q: %w", id, err)
	}
	if client == nil {
		return nil, &NotFoundError{Resource: "client", ID: id}
	}
	return client, nil
}

func (s *clientService) CreateClient(ctx context.Context, c *storage.Client) (*storage.Client, error) {
	if err := validateClient(c); err != nil {
		return nil, err
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	} else {
		existing, err := s.repo.GetClient(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("looking up client: %w", err)
		}
		if existing != nil {
			return nil, &ConflictError{Resource: "client", ID: c.ID}
		}
	}

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	s.logger.Info("client created", "id", c.ID, "name", c.Name)
	return c, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id string, c *storage.Client) (*storage.Client, error) {
	existing, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("looking up client: %w", err)
	}
	if existing == nil {
		return nil, &NotFoundError{Resource: "client", ID: id}
	}

	c.ID = id
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now()

	if err := validateClient(c); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateClient(ctx, c); err != nil {
		return nil, fmt.Errorf("updating client: %w", err)
	}

	s.logger.Info("client updated", "id", id, "name", c.Name)
	return c, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id string) error {
	existing, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return fmt.Errorf("looking up client: %w", err)
	}
	if existing == nil {
		return &NotFoundError{Resource: "client", ID: id}
	}

	if err := s.repo.DeleteClient(ctx, id); err != nil {
		return fmt.Errorf("deleting client %q: %w", id, err)
	}
	s.logger.Info("client deleted", "id", id)
	return nil
}

func validateClient(c *storage.Client) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	c.ContactEmail = strings.TrimSpace(c.ContactEmail)
	if c.ContactEmail != "" && !strings.Contains(c.ContactEmail, "@") {
		return &ValidationError{Field: "contact_email", Message: "must be a valid email address"}
	}
	return nil
}
