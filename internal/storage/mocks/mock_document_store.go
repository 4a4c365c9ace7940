package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/compliport/compliport/internal/storage"
)

// MockDocumentStore is a mock implementation of storage.DocumentStore.
type MockDocumentStore struct {
	mock.Mock
}

//nolint:revive
func (m *MockDocumentStore) ListDocuments(ctx context.Context, clientID string) ([]*storage.LegalDocument, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.LegalDocument), args.Error(1)
}

//nolint:revive
func (m *MockDocumentStore) GetDocument(ctx context.Context, id string) (*storage.LegalDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.LegalDocument), args.Error(1)
}

//nolint:revive
func (m *MockDocumentStore) CreateDocument(ctx context.Context, d *storage.LegalDocument) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

//nolint:revive
func (m *MockDocumentStore) UpdateDocument(ctx context.Context, d *storage.LegalDocument) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

//nolint:revive
func (m *MockDocumentStore) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
