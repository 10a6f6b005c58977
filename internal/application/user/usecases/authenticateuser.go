package usecases

import (
	"context"

	"fixdesk/internal/domain/user"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

// TokenIssuer signs an access token for an authenticated principal.
type TokenIssuer interface {
	Generate(userID uint, username, displayName string, role authorization.UserRole) (string, error)
}

// LoginLimiter bounds authentication attempts per key.
type LoginLimiter interface {
	Allow(key string) (bool, error)
}

type AuthenticateUserCommand struct {
	Username string
	Password string
}

type AuthenticateUserResult struct {
	UserID      uint
	Username    string
	DisplayName string
	Role        string
	AccessToken string
}

type AuthenticateUserUseCase struct {
	userRepo user.UserRepository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	limiter  LoginLimiter
	logger   logger.Interface
}

func NewAuthenticateUserUseCase(
	userRepo user.UserRepository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	limiter LoginLimiter,
	logger logger.Interface,
) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		limiter:  limiter,
		logger:   logger,
	}
}

func (uc *AuthenticateUserUseCase) Execute(ctx context.Context, cmd AuthenticateUserCommand) (*AuthenticateUserResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	if uc.limiter != nil {
		allowed, err := uc.limiter.Allow(cmd.Username)
		if err != nil {
			uc.logger.Errorw("login rate limiter failed", "error", err)
			return nil, errors.NewUnavailableError("authentication temporarily unavailable")
		}
		if !allowed {
			uc.logger.Warnw("login rate limit exceeded", "username", cmd.Username)
			return nil, errors.NewUnavailableError("too many login attempts")
		}
	}

	// Unknown username, wrong password, and deactivated principal all
	// produce the same error so the response leaks nothing.
	existing, err := uc.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		uc.logger.Errorw("failed to load user", "username", cmd.Username, "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("password verification failed", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if !existing.IsActive() {
		uc.logger.Warnw("login attempt for inactive user", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.Generate(existing.ID(), existing.Username(), existing.DisplayName(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("user authenticated", "user_id", existing.ID(), "username", existing.Username())

	return &AuthenticateUserResult{
		UserID:      existing.ID(),
		Username:    existing.Username(),
		DisplayName: existing.DisplayName(),
		Role:        existing.Role().String(),
		AccessToken: token,
	}, nil
}
