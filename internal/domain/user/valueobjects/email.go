package valueobjects

import (
	"fmt"
	"strings"
)

// Email is a normalized email address. Normalization (trim + lowercase) is
// the single place case-folding happens, so signup and login can never
// disagree about it.
type Email struct {
	value string
}

// NewEmail creates an Email value object, normalizing the input.
func NewEmail(value string) (*Email, error) {
	normalized := strings.TrimSpace(strings.ToLower(value))

	if normalized == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > 255 {
		return nil, fmt.Errorf("email cannot exceed 255 characters")
	}

	return &Email{value: normalized}, nil
}

// String returns the normalized address.
func (e *Email) String() string {
	return e.value
}

// Equals checks if two email objects are equal
func (e *Email) Equals(other *Email) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.value == other.value
}
