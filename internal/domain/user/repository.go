package user

import "context"

// Repository defines user persistence operations.
type Repository interface {
	// Create inserts a new user and assigns its ID and CreatedAt.
	// A duplicate email surfaces as ErrEmailAlreadyRegistered.
	Create(ctx context.Context, user *User) error

	// GetByEmail looks up a user by normalized email.
	// Returns nil, nil when no such user exists.
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// PasswordHasher abstracts the one-way password hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
