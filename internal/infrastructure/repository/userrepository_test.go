package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixmate/internal/domain/user"
	vo "fixmate/internal/domain/user/valueobjects"
)

type staticHasher struct{}

func (staticHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (staticHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

func newTestUser(t *testing.T, emailAddr string) *user.User {
	t.Helper()

	email, err := vo.NewEmail(emailAddr)
	require.NoError(t, err)
	password, err := vo.NewPassword("secret123")
	require.NoError(t, err)

	u, err := user.NewUser(email, "Alice")
	require.NoError(t, err)
	require.NoError(t, u.SetPassword(password, staticHasher{}))
	return u
}

func TestUserRepository_Create(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), noopLogger{})
	u := newTestUser(t, "alice@example.com")

	err := repo.Create(context.Background(), u)

	require.NoError(t, err)
	assert.NotZero(t, u.ID())
	assert.False(t, u.CreatedAt().IsZero())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), noopLogger{})
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser(t, "alice@example.com")))

	err := repo.Create(ctx, newTestUser(t, "alice@example.com"))

	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyRegistered)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), noopLogger{})
	ctx := context.Background()

	created := newTestUser(t, "alice@example.com")
	require.NoError(t, repo.Create(ctx, created))

	found, err := repo.GetByEmail(ctx, "alice@example.com")

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID(), found.ID())
	assert.Equal(t, "Alice", found.Name())
	assert.Equal(t, "alice@example.com", found.Email())
	assert.NoError(t, found.VerifyPassword("secret123", staticHasher{}))
	assert.Error(t, found.VerifyPassword("wrong", staticHasher{}))
}

func TestUserRepository_GetByEmail_AbsentIsNilNil(t *testing.T) {
	repo := NewUserRepository(newTestDB(t), noopLogger{})

	found, err := repo.GetByEmail(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Nil(t, found)
}
