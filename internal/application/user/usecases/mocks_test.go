package usecases

import (
	"context"
	"fmt"

	"fixdesk/internal/domain/user"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc           func(ctx context.Context, u *user.User) error
	FindByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	UpdateFunc         func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

// mockHasher marks hashes with a prefix so tests can verify without bcrypt.
type mockHasher struct{}

func (m *mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, username, displayName string, role authorization.UserRole) (string, error)
}

func (m *mockTokenIssuer) Generate(userID uint, username, displayName string, role authorization.UserRole) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, displayName, role)
	}
	return "token", nil
}

type mockLoginLimiter struct {
	AllowFunc func(key string) (bool, error)
}

func (m *mockLoginLimiter) Allow(key string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(key)
	}
	return true, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestGate(t interface{ Fatalf(string, ...any) }) *authorization.Gate {
	gate, err := authorization.NewGate()
	if err != nil {
		t.Fatalf("failed to build gate: %v", err)
	}
	return gate
}
