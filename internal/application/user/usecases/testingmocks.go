package usecases

import (
	"context"
	"errors"
	"time"

	"fixmate/internal/domain/user"
	"fixmate/internal/shared/logger"
)

// Test doubles shared by the use case tests in this package.

type mockUserRepo struct {
	user      *user.User
	createErr error
	getErr    error

	created *user.User
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = u
	_ = u.SetID(1)
	u.SetCreatedAt(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	return nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.user, m.getErr
}

// mockHasher marks hashes with a prefix so Verify is a plain string check.
type mockHasher struct {
	hashErr   error
	verifyErr error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashErr != nil {
		return "", m.hashErr
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.verifyErr != nil {
		return m.verifyErr
	}
	if hash != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
