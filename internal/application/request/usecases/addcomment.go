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

type AddCommentCommand struct {
	RequestID uint
	Text      string
}

type AddCommentResult struct {
	CommentID uint
	Author    string
	CreatedAt time.Time
}

// AddCommentUseCase appends a note to a request's ledger. The author is taken
// from the session principal, never from the command.
type AddCommentUseCase struct {
	commentRepo request.CommentRepository
	gate        *authorization.Gate
	logger      logger.Interface
}

func NewAddCommentUseCase(
	commentRepo request.CommentRepository,
	gate *authorization.Gate,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		commentRepo: commentRepo,
		gate:        gate,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	principal, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.gate.Authorize(principal.Role, authorization.OpAddComment); err != nil {
		uc.logger.Warnw("add comment denied", "request_id", cmd.RequestID, "user_id", principal.UserID, "role", principal.Role)
		return nil, err
	}

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	author := principal.DisplayName
	if author == "" {
		author = principal.Username
	}

	comment, err := request.NewComment(cmd.RequestID, author, cmd.Text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Append(ctx, comment); err != nil {
		uc.logger.Errorw("failed to append comment", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "request_id", cmd.RequestID, "user_id", principal.UserID)

	return &AddCommentResult{
		CommentID: comment.ID(),
		Author:    comment.Author(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
