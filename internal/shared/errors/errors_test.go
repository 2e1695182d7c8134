package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("bad").Code)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("missing").Code)
	assert.Equal(t, http.StatusBadRequest, NewConflictError("dup").Code)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("nope").Code)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("boom").Code)
}

func TestGetAppErrorUnwrapsWrappedErrors(t *testing.T) {
	appErr := NewNotFoundError("Data not found")
	wrapped := fmt.Errorf("handler: %w", appErr)

	got := GetAppError(wrapped)
	assert.NotNil(t, got)
	assert.Equal(t, ErrorTypeNotFound, got.Type)

	assert.Nil(t, GetAppError(errors.New("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(errors.New("UNIQUE constraint failed: users.email")))
	assert.True(t, IsDuplicateError(errors.New("duplicate key value violates unique constraint")))
	assert.False(t, IsDuplicateError(errors.New("no such table: users")))
	assert.False(t, IsDuplicateError(nil))
}
