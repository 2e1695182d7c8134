// Package user holds the account domain: registration, credential
// verification, and the persistence contracts both depend on.
package user

import (
	"fmt"
	"time"

	vo "fixmate/internal/domain/user/valueobjects"
)

// User is the account aggregate. The password is only ever held as a hash.
type User struct {
	id           uint
	name         string
	email        *vo.Email
	passwordHash string
	createdAt    time.Time
}

// NewUser creates a user pending persistence. ID and CreatedAt are assigned
// by the store.
func NewUser(email *vo.Email, name string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return &User{
		name:  name,
		email: email,
	}, nil
}

// Reconstruct rebuilds a user from persisted state.
func Reconstruct(id uint, name, email, passwordHash string, createdAt time.Time) (*User, error) {
	emailVO, err := vo.NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid persisted email: %w", err)
	}
	return &User{
		id:           id,
		name:         name,
		email:        emailVO,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}, nil
}

// SetPassword hashes and stores the password.
func (u *User) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	hash, err := hasher.Hash(password.Value())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("no password set")
	}
	return hasher.Verify(password, u.passwordHash)
}

// SetID assigns the store-generated ID after insert.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("id already set")
	}
	u.id = id
	return nil
}

// SetCreatedAt assigns the store-generated creation time after insert.
func (u *User) SetCreatedAt(t time.Time) {
	u.createdAt = t
}

func (u *User) ID() uint             { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email.String() }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
