package storage

import (
	"context"
	"time"
)

// Client is a tenant of the portal.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ClientStore defines the interface for persisting clients.
type ClientStore interface {
	ListClients(ctx context.Context) ([]*Client, error)
	// GetClient returns nil (no error) when the client does not exist.
	GetClient(ctx context.Context, id string) (*Client, error)
	CreateClient(ctx context.Context, c *Client) error
	UpdateClient(ctx context.Context, c *Client) error
	DeleteClient(ctx context.Context, id string) error
}
