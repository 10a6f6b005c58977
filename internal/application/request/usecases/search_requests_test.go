package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/request"
	"fixdesk/internal/shared/errors"
)

func TestSearchRequestsUseCase_Success(t *testing.T) {
	repo := &mockRequestRepository{
		SearchFunc: func(ctx context.Context, query string) ([]*request.Request, error) {
			assert.Equal(t, "laser", query)
			return []*request.Request{storedRequest(t)}, nil
		},
	}
	uc := NewSearchRequestsUseCase(repo, newTestGate(t), &mockLogger{})

	result, err := uc.Execute(userContext(), SearchRequestsQuery{Query: "laser"})

	require.NoError(t, err)
	require.Len(t, result.Requests, 1)
	assert.Equal(t, request.FirstNumber, result.Requests[0].Number)
}

func TestSearchRequestsUseCase_EmptyResult(t *testing.T) {
	repo := &mockRequestRepository{
		SearchFunc: func(ctx context.Context, query string) ([]*request.Request, error) {
			return []*request.Request{}, nil
		},
	}
	uc := NewSearchRequestsUseCase(repo, newTestGate(t), &mockLogger{})

	result, err := uc.Execute(userContext(), SearchRequestsQuery{Query: "nothing"})

	require.NoError(t, err)
	assert.NotNil(t, result.Requests)
	assert.Empty(t, result.Requests)
}

func TestSearchRequestsUseCase_NoSession(t *testing.T) {
	uc := NewSearchRequestsUseCase(&mockRequestRepository{}, newTestGate(t), &mockLogger{})

	_, err := uc.Execute(context.Background(), SearchRequestsQuery{Query: "laser"})

	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}
