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

type CreateRequestCommand struct {
	Equipment   string
	FaultType   string
	Description string
	Client      string
	Status      string
	AssignedTo  string
}

type CreateRequestResult struct {
	RequestID uint
	Number    int
	Status    string
	CreatedAt time.Time
}

type CreateRequestUseCase struct {
	requestRepo request.RequestRepository
	gate        *authorization.Gate
	logger      logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo request.RequestRepository,
	gate *authorization.Gate,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo: requestRepo,
		gate:        gate,
		logger:      logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error) {
	principal, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.gate.Authorize(principal.Role, authorization.OpCreateRequest); err != nil {
		uc.logger.Warnw("create request denied", "user_id", principal.UserID, "role", principal.Role)
		return nil, err
	}

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create request command", "error", err)
		return nil, err
	}

	newRequest, err := request.NewRequest(
		cmd.Equipment,
		cmd.FaultType,
		cmd.Description,
		cmd.Client,
		request.Status(cmd.Status),
		cmd.AssignedTo,
	)
	if err != nil {
		uc.logger.Errorw("failed to create request entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Create(ctx, newRequest); err != nil {
		uc.logger.Errorw("failed to save request", "error", err)
		return nil, err
	}

	uc.logger.Infow("request created", "request_id", newRequest.ID(), "number", newRequest.Number(), "user_id", principal.UserID)

	return &CreateRequestResult{
		RequestID: newRequest.ID(),
		Number:    newRequest.Number(),
		Status:    newRequest.Status().String(),
		CreatedAt: newRequest.CreatedAt(),
	}, nil
}

func (uc *CreateRequestUseCase) validateCommand(cmd CreateRequestCommand) error {
	if len(cmd.Equipment) == 0 {
		return errors.NewValidationError("equipment is required")
	}

	if len(cmd.Client) == 0 {
		return errors.NewValidationError("client is required")
	}

	if cmd.Status != "" && !request.Status(cmd.Status).IsValid() {
		return errors.NewValidationError("invalid status")
	}

	return nil
}
