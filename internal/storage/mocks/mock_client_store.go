package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/compliport/compliport/internal/storage"
)

// MockClientStore is a mock implementation of storage.ClientStore.
type MockClientStore struct {
	mock.Mock
}

//nolint:revive
func (m *MockClientStore) ListClients(ctx context.Context) ([]*storage.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Client), args.Error(1)
}

//nolint:revive
func (m *MockClientStore) GetClient(ctx context.Context, id string) (*storage.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Client), args.Error(1)
}

//nolint:revive
func (m *MockClientStore) CreateClient(ctx context.Context, c *storage.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

//nolint:revive
func (m *MockClientStore) UpdateClient(ctx context.Context, c *storage.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

//nolint:revive
func (m *MockClientStore) DeleteClient(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
