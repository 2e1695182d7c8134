package usecases

import (
	"context"
	"fmt"
	"strings"

	"fixmate/internal/domain/user"
	apperrors "fixmate/internal/shared/errors"
	"fixmate/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*UserResult, error) {
	email := strings.TrimSpace(strings.ToLower(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, apperrors.NewValidationError("Missing email or password")
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Unknown email and wrong password must be indistinguishable to the
	// caller, so both paths return the same error.
	if existingUser == nil {
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID())

	return newUserResult(existingUser), nil
}
