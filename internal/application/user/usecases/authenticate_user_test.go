package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/user"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
)

func storedUser(t *testing.T, role authorization.UserRole, active bool) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(1, "alice", "hashed:password123", "Alice", role, active, time.Now())
	require.NoError(t, err)
	return u
}

func TestAuthenticateUserUseCase_Success(t *testing.T) {
	repo := &mockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return storedUser(t, authorization.RoleUser, true), nil
		},
	}
	uc := NewAuthenticateUserUseCase(repo, &mockHasher{}, &mockTokenIssuer{}, &mockLoginLimiter{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AuthenticateUserCommand{
		Username: "alice",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.UserID)
	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, "user", result.Role)
	assert.Equal(t, "token", result.AccessToken)
}

func TestAuthenticateUserUseCase_GenericErrorHidesCause(t *testing.T) {
	tests := []struct {
		name string
		repo *mockUserRepository
		pass string
	}{
		{
			name: "unknown username",
			repo: &mockUserRepository{
				FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
					return nil, errors.NewNotFoundError("user not found")
				},
			},
			pass: "password123",
		},
		{
			name: "wrong password",
			repo: &mockUserRepository{
				FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
					return storedUser(t, authorization.RoleUser, true), nil
				},
			},
			pass: "wrong",
		},
		{
			name: "inactive user",
			repo: &mockUserRepository{
				FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
					return storedUser(t, authorization.RoleUser, false), nil
				},
			},
			pass: "password123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewAuthenticateUserUseCase(tt.repo, &mockHasher{}, &mockTokenIssuer{}, &mockLoginLimiter{}, &mockLogger{})

			result, err := uc.Execute(context.Background(), AuthenticateUserCommand{
				Username: "alice",
				Password: tt.pass,
			})

			require.Error(t, err)
			assert.True(t, errors.IsUnauthorizedError(err))
			appErr := errors.GetAppError(err)
			assert.Equal(t, "invalid credentials", appErr.Message)
			assert.Nil(t, result)
		})
	}
}

func TestAuthenticateUserUseCase_RoleChangeVisibleOnNextLogin(t *testing.T) {
	role := authorization.RoleUser
	repo := &mockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return storedUser(t, role, true), nil
		},
	}
	uc := NewAuthenticateUserUseCase(repo, &mockHasher{}, &mockTokenIssuer{}, &mockLoginLimiter{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AuthenticateUserCommand{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "user", result.Role)

	role = authorization.RoleAdmin

	result, err = uc.Execute(context.Background(), AuthenticateUserCommand{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", result.Role)
}

func TestAuthenticateUserUseCase_RateLimited(t *testing.T) {
	looked := false
	repo := &mockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			looked = true
			return storedUser(t, authorization.RoleUser, true), nil
		},
	}
	limiter := &mockLoginLimiter{
		AllowFunc: func(key string) (bool, error) { return false, nil },
	}
	uc := NewAuthenticateUserUseCase(repo, &mockHasher{}, &mockTokenIssuer{}, limiter, &mockLogger{})

	_, err := uc.Execute(context.Background(), AuthenticateUserCommand{Username: "alice", Password: "password123"})

	require.Error(t, err)
	assert.True(t, errors.IsUnavailableError(err))
	assert.False(t, looked, "store must not be read when rate limited")
}

func TestAuthenticateUserUseCase_MissingFields(t *testing.T) {
	uc := NewAuthenticateUserUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenIssuer{}, &mockLoginLimiter{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AuthenticateUserCommand{Username: "alice"})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
