package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/compliport/compliport/internal/service"
)

func TestNotFoundError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *service.NotFoundError
		expected string
	}{
		{
			name:     "typical resource",
			err:      &service.NotFoundError{Resource: "client", ID: "acme-corp"},
			expected: `client "acme-corp" not found`,
		},
		{
			name:     "different resource type",
			err:      &service.NotFoundError{Resource: "document", ID: "doc-123"},
			expected: `document "doc-123" not found`,
		},
		{
			name:     "empty ID",
			err:      &service.NotFoundError{Resource: "client", ID: ""},
			expected: `client "" not found`,
		},
		{
			name:     "empty resource",
			err:      &service.NotFoundError{Resource: "", ID: "some-id"},
			expected: ` "some-id" not found`,
		},
		{
			name:     "both empty",
			err:      &service.NotFoundError{Resource: "", ID: ""},
			expected: ` "" not found`,
		},
		{
			name:     "ID with special characters",
			err:      &service.NotFoundError{Resource: "holiday", ID: "2026-01-01/extra"},
			expected: `holiday "2026-01-01/extra" not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNotFoundError_implements_error(t *testing.T) {
	var err error = &service.NotFoundError{Resource: "client", ID: "x"}
	assert.Error(t, err)
}

func TestConflictError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *service.ConflictError
		expected string
	}{
		{
			name:     "typical resource",
			err:      &service.ConflictError{Resource: "client", ID: "acme-corp"},
			expected: `client with id "acme-corp" already exists`,
		},
		{
			name:     "different resource type",
			err:      &service.ConflictError{Resource: "schedule", ID: "training"},
			expected: `schedule with id "training" already exists`,
		},
		{
			name:     "empty ID",
			err:      &service.ConflictError{Resource: "client", ID: ""},
			expected: `client with id "" already exists`,
		},
		{
			name:     "empty resource",
			err:      &service.ConflictError{Resource: "", ID: "dup"},
			expected: ` with id "dup" already exists`,
		},
		{
			name:     "both empty",
			err:      &service.ConflictError{Resource: "", ID: ""},
			expected: ` with id "" already exists`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestConflictError_implements_error(t *testing.T) {
	var err error = &service.ConflictError{Resource: "client", ID: "x"}
	assert.Error(t, err)
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *service.ValidationError
		expected string
	}{
		{
			name:     "with field and message",
			err:      &service.ValidationError{Field: "name", Message: "name is required"},
			expected: `validation error for "name": name is required`,
		},
		{
			name:     "without field - returns message only",
			err:      &service.ValidationError{Field: "", Message: "invalid request body"},
			expected: "invalid request body",
		},
		{
			name:     "empty message with field",
			err:      &service.ValidationError{Field: "category", Message: ""},
			expected: `validation error for "category": `,
		},
		{
			name:     "both empty",
			err:      &service.ValidationError{Field: "", Message: ""},
			expected: "",
		},
		{
			name:     "field with special characters",
			err:      &service.ValidationError{Field: "provider.host", Message: "unsupported host"},
			expected: `validation error for "provider.host": unsupported host`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidationError_implements_error(t *testing.T) {
	var err error = &service.ValidationError{Field: "x", Message: "bad"}
	assert.Error(t, err)
}
