package usecases

import (
	"context"

	"fixdesk/internal/domain/request"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/session"
)

// UpdateRequestCommand carries a partial update. An empty field means
// "leave unchanged"; clearing a field to empty is not supported.
type UpdateRequestCommand struct {
	RequestID   uint
	Equipment   string
	FaultType   string
	Description string
	Client      string
	Status      string
	AssignedTo  string
}

type UpdateRequestResult struct {
	Request RequestView
}

type UpdateRequestUseCase struct {
	requestRepo request.RequestRepository
	gate        *authorization.Gate
	logger      logger.Interface
}

func NewUpdateRequestUseCase(
	requestRepo request.RequestRepository,
	gate *authorization.Gate,
	logger logger.Interface,
) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		requestRepo: requestRepo,
		gate:        gate,
		logger:      logger,
	}
}

func (uc *UpdateRequestUseCase) Execute(ctx context.Context, cmd UpdateRequestCommand) (*UpdateRequestResult, error) {
	principal, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.gate.Authorize(principal.Role, authorization.OpEditRequest); err != nil {
		uc.logger.Warnw("update request denied", "request_id", cmd.RequestID, "user_id", principal.UserID, "role", principal.Role)
		return nil, err
	}

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	fields := request.UpdateFields{
		Equipment:   cmd.Equipment,
		FaultType:   cmd.FaultType,
		Description: cmd.Description,
		Client:      cmd.Client,
		Status:      cmd.Status,
		AssignedTo:  cmd.AssignedTo,
	}
	if fields.IsEmpty() {
		return nil, errors.NewValidationError("no fields to update")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	if err := req.ApplyUpdate(fields); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	uc.logger.Infow("request updated", "request_id", req.ID(), "number", req.Number(), "user_id", principal.UserID)

	return &UpdateRequestResult{Request: newRequestView(req)}, nil
}
