package user

import "errors"

// ErrEmailAlreadyRegistered signals a signup with an email that already has
// an account. Raised from the store's unique constraint.
var ErrEmailAlreadyRegistered = errors.New("email already registered")
