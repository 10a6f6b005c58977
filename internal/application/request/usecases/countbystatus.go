package usecases

import (
	"context"

	"fixdesk/internal/domain/request"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/session"
)

type CountByStatusQuery struct {
	Status string
}

type CountByStatusResult struct {
	Status string
	Count  int64
}

type CountByStatusUseCase struct {
	requestRepo request.RequestRepository
	gate        *authorization.Gate
	logger      logger.Interface
}

func NewCountByStatusUseCase(
	requestRepo request.RequestRepository,
	gate *authorization.Gate,
	logger logger.Interface,
) *CountByStatusUseCase {
	return &CountByStatusUseCase{
		requestRepo: requestRepo,
		gate:        gate,
		logger:      logger,
	}
}

func (uc *CountByStatusUseCase) Execute(ctx context.Context, query CountByStatusQuery) (*CountByStatusResult, error) {
	principal, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.gate.Authorize(principal.Role, authorization.OpCountRequests); err != nil {
		uc.logger.Warnw("count by status denied", "user_id", principal.UserID, "role", principal.Role)
		return nil, err
	}

	status, err := request.NewStatus(query.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	count, err := uc.requestRepo.CountByStatus(ctx, status)
	if err != nil {
		uc.logger.Errorw("failed to count requests", "status", status, "error", err)
		return nil, err
	}

	return &CountByStatusResult{Status: status.String(), Count: count}, nil
}
