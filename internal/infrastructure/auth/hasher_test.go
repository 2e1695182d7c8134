package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, hasher.Verify("secret123", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
}

func TestBcryptPasswordHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptPasswordHasher_VerifyMalformedHash(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	assert.Error(t, hasher.Verify("secret123", "not-a-bcrypt-hash"))
}

func TestNewBcryptPasswordHasher_ClampsInvalidCost(t *testing.T) {
	hasher := NewBcryptPasswordHasher(99)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NoError(t, hasher.Verify("secret123", hash))
}
