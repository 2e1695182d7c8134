package valueobjects

import "fmt"

// Password wraps a plaintext password before hashing. It exists so raw
// passwords never travel as bare strings through the domain.
type Password struct {
	value string
}

// NewPassword validates a plaintext password.
func NewPassword(value string) (*Password, error) {
	if value == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}
	return &Password{value: value}, nil
}

// Value returns the plaintext. Callers must only pass it to a hasher.
func (p *Password) Value() string {
	return p.value
}
