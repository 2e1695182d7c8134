package usecases

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixmate/internal/domain/user"
	apperrors "fixmate/internal/shared/errors"
)

func loginTestUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.Reconstruct(7, "Alice", "alice@example.com", "hashed:secret123",
		time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	repo := &mockUserRepo{user: loginTestUser(t)}
	uc := NewLoginUseCase(repo, &mockHasher{}, noopLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "Alice@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, "alice@example.com", result.Email)
}

func TestLoginUseCase_Execute_MissingFields(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepo{}, &mockHasher{}, noopLogger{})

	tests := []struct {
		name string
		cmd  LoginCommand
	}{
		{"missing email", LoginCommand{Password: "x"}},
		{"missing password", LoginCommand{Email: "a@b.com"}},
		{"both missing", LoginCommand{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
			assert.Equal(t, "Missing email or password", appErr.Message)
		})
	}
}

func TestLoginUseCase_Execute_InvalidCredentials(t *testing.T) {
	// Unknown email and wrong password must produce byte-identical errors so
	// a caller cannot probe which emails are registered.
	tests := []struct {
		name string
		repo *mockUserRepo
		cmd  LoginCommand
	}{
		{
			name: "unknown email",
			repo: &mockUserRepo{user: nil},
			cmd:  LoginCommand{Email: "nobody@example.com", Password: "secret123"},
		},
		{
			name: "wrong password",
			repo: &mockUserRepo{user: nil},
			cmd:  LoginCommand{Email: "alice@example.com", Password: "wrong"},
		},
	}
	tests[1].repo.user = loginTestUser(t)

	var messages []string
	var codes []int
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewLoginUseCase(tt.repo, &mockHasher{}, noopLogger{})
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusUnauthorized, appErr.Code)
			assert.Equal(t, "Invalid credentials", appErr.Message)
			messages = append(messages, appErr.Message)
			codes = append(codes, appErr.Code)
		})
	}

	require.Len(t, messages, 2)
	assert.Equal(t, messages[0], messages[1])
	assert.Equal(t, codes[0], codes[1])
}

func TestLoginUseCase_Execute_RepoError(t *testing.T) {
	repo := &mockUserRepo{getErr: errors.New("db locked")}
	uc := NewLoginUseCase(repo, &mockHasher{}, noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, apperrors.GetAppError(err))
}
