package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fixmate/internal/domain/user"
	vo "fixmate/internal/domain/user/valueobjects"
	apperrors "fixmate/internal/shared/errors"
	"fixmate/internal/shared/logger"
)

type SignupCommand struct {
	Name     string
	Email    string
	Password string
}

// UserResult is the public view of an account. The password hash is never
// part of it.
type UserResult struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResult(u *user.User) *UserResult {
	return &UserResult{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
	}
}

type SignupUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewSignupUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*UserResult, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" || strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" {
		return nil, apperrors.NewValidationError("Missing name, email or password")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError("Missing name, email or password")
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, apperrors.NewValidationError("Missing name, email or password")
	}

	newUser, err := user.NewUser(email, name)
	if err != nil {
		uc.logger.Errorw("failed to create user aggregate", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := newUser.SetPassword(password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to set password", "error", err)
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	// The unique index on email is the source of truth for duplicates; a
	// pre-check would still race with concurrent signups.
	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, user.ErrEmailAlreadyRegistered) {
			return nil, apperrors.NewConflictError("Email already registered")
		}
		uc.logger.Errorw("failed to create user in database", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", newUser.Email())

	return newUserResult(newUser), nil
}
