package usecases

import (
	"context"

	"fixdesk/internal/domain/request"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/session"
)

type mockRequestRepository struct {
	CreateFunc        func(ctx context.Context, req *request.Request) error
	GetByIDFunc       func(ctx context.Context, id uint) (*request.Request, error)
	UpdateFunc        func(ctx context.Context, req *request.Request) error
	SearchFunc        func(ctx context.Context, query string) ([]*request.Request, error)
	CountByStatusFunc func(ctx context.Context, status request.Status) (int64, error)
}

func (m *mockRequestRepository) Create(ctx context.Context, req *request.Request) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) Update(ctx context.Context, req *request.Request) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) Search(ctx context.Context, query string) ([]*request.Request, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockRequestRepository) CountByStatus(ctx context.Context, status request.Status) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

type mockCommentRepository struct {
	AppendFunc        func(ctx context.Context, comment *request.Comment) error
	ListByRequestFunc func(ctx context.Context, requestID uint) ([]*request.Comment, error)
}

func (m *mockCommentRepository) Append(ctx context.Context, comment *request.Comment) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) ListByRequest(ctx context.Context, requestID uint) ([]*request.Comment, error) {
	if m.ListByRequestFunc != nil {
		return m.ListByRequestFunc(ctx, requestID)
	}
	return nil, nil
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

func userContext() context.Context {
	return session.WithPrincipal(context.Background(), session.Principal{
		UserID:      1,
		Username:    "alice",
		DisplayName: "Alice",
		Role:        authorization.RoleUser,
	})
}

func adminContext() context.Context {
	return session.WithPrincipal(context.Background(), session.Principal{
		UserID:      2,
		Username:    "root",
		DisplayName: "Root",
		Role:        authorization.RoleAdmin,
	})
}
