package usecases

import (
	"context"

	"fixdesk/internal/domain/user"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/session"
)

type SetRoleCommand struct {
	UserID uint
	Role   string
}

type SetRoleResult struct {
	UserID   uint
	Username string
	Role     string
}

// SetRoleUseCase changes a principal's role. Only admins pass the gate; a
// freshly granted role takes effect on the subject's next authentication.
type SetRoleUseCase struct {
	userRepo user.UserRepository
	gate     *authorization.Gate
	logger   logger.Interface
}

func NewSetRoleUseCase(
	userRepo user.UserRepository,
	gate *authorization.Gate,
	logger logger.Interface,
) *SetRoleUseCase {
	return &SetRoleUseCase{
		userRepo: userRepo,
		gate:     gate,
		logger:   logger,
	}
}

func (uc *SetRoleUseCase) Execute(ctx context.Context, cmd SetRoleCommand) (*SetRoleResult, error) {
	principal, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.gate.Authorize(principal.Role, authorization.OpSetRole); err != nil {
		uc.logger.Warnw("set role denied", "actor_id", principal.UserID, "role", principal.Role)
		return nil, err
	}

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role")
	}

	subject, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	if err := subject.ChangeRole(role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, subject); err != nil {
		uc.logger.Errorw("failed to update user role", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user role changed", "user_id", subject.ID(), "new_role", role, "actor_id", principal.UserID)

	return &SetRoleResult{
		UserID:   subject.ID(),
		Username: subject.Username(),
		Role:     subject.Role().String(),
	}, nil
}
