package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fixdesk/internal/shared/errors"
)

// Store calls run under a per-call deadline; a context that is already done
// must surface as unavailable, not as a wrapped driver fault.
func TestRequestRepository_GetByID_ExpiredDeadlineIsUnavailable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)

	seed := newTestRequest(t, "Printer", "Bob")
	require.NoError(t, repo.Create(context.Background(), seed))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetByID(ctx, seed.ID())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailableError(err))
}

func TestRequestRepository_Create_ExpiredDeadlineIsUnavailable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Create(ctx, newTestRequest(t, "Scanner", "Carol"))
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailableError(err))
}

func TestUserRepository_FindByID_ExpiredDeadlineIsUnavailable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindByID(ctx, 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailableError(err))
}
