package usecases

import (
	"context"

	"fixdesk/internal/domain/request"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/session"
)

type GetRequestQuery struct {
	RequestID uint
}

type GetRequestResult struct {
	Request RequestView
}

type GetRequestUseCase struct {
	requestRepo request.RequestRepository
	gate        *authorization.Gate
	logger      logger.Interface
}

func NewGetRequestUseCase(
	requestRepo request.RequestRepository,
	gate *authorization.Gate,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo: requestRepo,
		gate:        gate,
		logger:      logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*GetRequestResult, error) {
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

	req, err := uc.requestRepo.GetByID(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load request", "request_id", query.RequestID, "error", err)
		return nil, err
	}

	return &GetRequestResult{Request: newRequestView(req)}, nil
}
