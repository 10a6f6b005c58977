package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/user"
	"fixdesk/internal/shared/authorization"
	apperrors "fixdesk/internal/shared/errors"
)

func newTestUser(t *testing.T, username string) *user.User {
	t.Helper()
	u, err := user.NewUser(username, "$2a$12$testhash", "Test User")
	require.NoError(t, err)
	return u
}

func TestUserRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("save assigns id", func(t *testing.T) {
		u := newTestUser(t, "alice")
		require.NoError(t, repo.Save(ctx, u))
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		dup := newTestUser(t, "alice")
		err := repo.Save(ctx, dup)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newTestUser(t, "bob")
	require.NoError(t, repo.Save(ctx, u))

	found, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), found.ID())
	assert.Equal(t, authorization.RoleUser, found.Role())
	assert.True(t, found.IsActive())

	_, err = repo.FindByUsername(ctx, "nobody")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUserRepository_Update_RoleChange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newTestUser(t, "carol")
	require.NoError(t, repo.Save(ctx, u))

	require.NoError(t, u.ChangeRole(authorization.RoleAdmin))
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.FindByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleAdmin, found.Role())
	assert.Equal(t, "carol", found.Username())
}

func TestUserRepository_Update_Deactivate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newTestUser(t, "dave")
	require.NoError(t, repo.Save(ctx, u))

	u.Deactivate()
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.FindByUsername(ctx, "dave")
	require.NoError(t, err)
	assert.False(t, found.IsActive())
}
