package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without details",
			err:      NewValidationError("equipment is required"),
			expected: "validation_error: equipment is required",
		},
		{
			name:     "with details",
			err:      NewConflictError("username already exists", "alice"),
			expected: "conflict: username already exists (alice)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		err          *AppError
		expectedType ErrorType
		expectedCode int
	}{
		{"validation", NewValidationError("m"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("m"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("m"), ErrorTypeConflict, http.StatusConflict},
		{"unauthorized", NewUnauthorizedError("m"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("m"), ErrorTypeForbidden, http.StatusForbidden},
		{"unavailable", NewUnavailableError("m"), ErrorTypeUnavailable, http.StatusServiceUnavailable},
		{"internal", NewInternalError("m"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedType, tt.err.Type)
			assert.Equal(t, tt.expectedCode, tt.err.Code)
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("m")))
	assert.True(t, IsNotFoundError(NewNotFoundError("m")))
	assert.True(t, IsConflictError(NewConflictError("m")))
	assert.True(t, IsUnauthorizedError(NewUnauthorizedError("m")))
	assert.True(t, IsForbiddenError(NewForbiddenError("m")))
	assert.True(t, IsUnavailableError(NewUnavailableError("m")))

	assert.False(t, IsValidationError(NewNotFoundError("m")))
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsForbiddenError(errors.New("plain")))
}

func TestPredicates_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("saving request: %w", NewConflictError("duplicate number"))
	assert.True(t, IsConflictError(wrapped))
	assert.True(t, IsAppError(wrapped))
	assert.Equal(t, ErrorTypeConflict, GetAppError(wrapped).Type)
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"mysql", errors.New("Error 1062: Duplicate entry '1001' for key 'number'"), true},
		{"postgres", errors.New(`pq: duplicate key value violates unique constraint "requests_number_key"`), true},
		{"sqlite", errors.New("UNIQUE constraint failed: requests.number"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDuplicateError(tt.err))
		})
	}
}
