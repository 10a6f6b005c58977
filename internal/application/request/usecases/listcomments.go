package usecases

import (
	"context"
	"time"

	"fixdesk/internal/domain/request"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/session"
)

type ListCommentsQuery struct {
	RequestID uint
}

type CommentView struct {
	ID        uint
	RequestID uint
	Author    string
	Text      string
	CreatedAt time.Time
}

type ListCommentsResult struct {
	Comments []CommentView
}

type ListCommentsUseCase struct {
	requestRepo request.RequestRepository
	commentRepo request.CommentRepository
	gate        *authorization.Gate
	logger      logger.Interface
}

func NewListCommentsUseCase(
	requestRepo request.RequestRepository,
	commentRepo request.CommentRepository,
	gate *authorization.Gate,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		requestRepo: requestRepo,
		commentRepo: commentRepo,
		gate:        gate,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error) {
	principal, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.gate.Authorize(principal.Role, authorization.OpViewRequest); err != nil {
		return nil, err
	}

	if query.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	// Listing comments of a request that does not exist is not-found, not an
	// empty list.
	if _, err := uc.requestRepo.GetByID(ctx, query.RequestID); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByRequest(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "request_id", query.RequestID, "error", err)
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{
			ID:        c.ID(),
			RequestID: c.RequestID(),
			Author:    c.Author(),
			Text:      c.Text(),
			CreatedAt: c.CreatedAt(),
		})
	}

	return &ListCommentsResult{Comments: views}, nil
}
