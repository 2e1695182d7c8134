package handlers

import (
	"context"

	"fixmate/internal/application/user/usecases"
)

// Use case interfaces consumed by AuthHandler. Declared here so tests can
// substitute mocks.

type SignupExecutor interface {
	Execute(ctx context.Context, cmd usecases.SignupCommand) (*usecases.UserResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.UserResult, error)
}
