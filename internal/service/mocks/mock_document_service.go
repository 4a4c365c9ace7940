package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/compliport/compliport/internal/storage"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

//nolint:revive
func (m *MockDocumentService) ListDocuments(ctx context.Context, clientID string) ([]*storage.LegalDocument, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.LegalDocument), args.Error(1)
}

//nolint:revive
func (m *MockDocumentService) GetDocument(ctx context.Context, id string) (*storage.LegalDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.LegalDocument), args.Error(1)
}

//nolint:revive
func (m *MockDocumentService) CreateDocument(ctx context.Context, clientID string, d *storage.LegalDocument) (*storage.LegalDocument, error) {
	args := m.Called(ctx, clientID, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.LegalDocument), args.Error(1)
}

//nolint:revive
func (m *MockDocumentService) UpdateDocument(ctx context.Context, id string, d *storage.LegalDocument) (*storage.LegalDocument, error) {
	args := m.Called(ctx, id, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.LegalDocument), args.Error(1)
}

//nolint:revive
func (m *MockDocumentService) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
