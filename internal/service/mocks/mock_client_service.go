package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/compliport/compliport/internal/storage"
)

// MockClientService is a mock implementation of service.ClientService.
type MockClientService struct {
	mock.Mock
}

//nolint:revive
func (m *MockClientService) ListClients(ctx context.Context) ([]*storage.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Client), args.Error(1)
}

//nolint:revive
func (m *MockClientService) GetClient(ctx context.Context, id string) (*storage.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Client), args.Error(1)
}

//nolint:revive
func (m *MockClientService) CreateClient(ctx context.Context, c *storage.Client) (*storage.Client, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Client), args.Error(1)
}

//nolint:revive
func (m *MockClientService) UpdateClient(ctx context.Context, id string, c *storage.Client) (*storage.Client, error) {
	args := m.Called(ctx, id, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Client), args.Error(1)
}

//nolint:revive
func (m *MockClientService) DeleteClient(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
