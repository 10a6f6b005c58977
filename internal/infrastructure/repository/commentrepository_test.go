package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/request"
	apperrors "fixdesk/internal/shared/errors"
)

func TestCommentRepository_Append(t *testing.T) {
	db := setupTestDB(t)
	requestRepo := NewRequestRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	req := newTestRequest(t, "Printer", "Bob")
	require.NoError(t, requestRepo.Create(ctx, req))

	t.Run("append to existing request", func(t *testing.T) {
		c, err := request.NewComment(req.ID(), "Alice A", "ordered a replacement part")
		require.NoError(t, err)

		require.NoError(t, commentRepo.Append(ctx, c))
		assert.NotZero(t, c.ID())
	})

	t.Run("append to missing request fails and writes nothing", func(t *testing.T) {
		c, err := request.NewComment(9999, "Alice A", "lost comment")
		require.NoError(t, err)

		err = commentRepo.Append(ctx, c)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
		assert.Zero(t, c.ID())

		orphans, err := commentRepo.ListByRequest(ctx, 9999)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})
}

func TestCommentRepository_ListByRequest_CreationOrder(t *testing.T) {
	db := setupTestDB(t)
	requestRepo := NewRequestRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	req := newTestRequest(t, "Printer", "Bob")
	require.NoError(t, requestRepo.Create(ctx, req))

	for i := 0; i < 3; i++ {
		c, err := request.NewComment(req.ID(), "Alice A", fmt.Sprintf("note %d", i))
		require.NoError(t, err)
		require.NoError(t, commentRepo.Append(ctx, c))
	}

	comments, err := commentRepo.ListByRequest(ctx, req.ID())
	require.NoError(t, err)
	require.Len(t, comments, 3)
	for i, c := range comments {
		assert.Equal(t, fmt.Sprintf("note %d", i), c.Text())
		assert.Equal(t, req.ID(), c.RequestID())
	}
}

func TestCommentRepository_ListByRequest_Empty(t *testing.T) {
	db := setupTestDB(t)
	requestRepo := NewRequestRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	req := newTestRequest(t, "Printer", "Bob")
	require.NoError(t, requestRepo.Create(ctx, req))

	comments, err := commentRepo.ListByRequest(ctx, req.ID())
	require.NoError(t, err)
	assert.Empty(t, comments)
}
