package usecases

import (
	"context"
	"strings"
	"time"

	"fixdesk/internal/domain/user"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type RegisterUserCommand struct {
	Username    string
	Password    string
	DisplayName string
}

type RegisterUserResult struct {
	UserID    uint
	Username  string
	Role      string
	CreatedAt time.Time
}

// RegisterUserUseCase creates a principal. Registration is open; every new
// principal starts with role user.
type RegisterUserUseCase struct {
	userRepo       user.UserRepository
	hasher         user.PasswordHasher
	minPasswordLen int
	logger         logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.UserRepository,
	hasher user.PasswordHasher,
	minPasswordLen int,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:       userRepo,
		hasher:         hasher,
		minPasswordLen: minPasswordLen,
		logger:         logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" {
		return nil, errors.NewValidationError("username is required")
	}
	if len(cmd.Password) < uc.minPasswordLen {
		return nil, errors.NewValidationError("password too short")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	displayName := strings.TrimSpace(cmd.DisplayName)
	if displayName == "" {
		displayName = username
	}

	newUser, err := user.NewUser(username, hash, displayName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The unique index on username decides duplicates; Save surfaces a
	// conflict error when another registration won the race.
	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "username", username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", username)

	return &RegisterUserResult{
		UserID:    newUser.ID(),
		Username:  newUser.Username(),
		Role:      newUser.Role().String(),
		CreatedAt: newUser.CreatedAt(),
	}, nil
}
