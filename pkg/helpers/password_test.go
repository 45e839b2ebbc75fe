package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pass1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "pass1", hash)
	assert.NoError(t, VerifyPassword(hash, "pass1"))
	assert.ErrorIs(t, VerifyPassword(hash, "pass2"), ErrPasswordMismatch)
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashPassword_Cost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw", 5)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)

	_, err = HashPassword("pw", 3)
	assert.Error(t, err)
	_, err = HashPassword("pw", 32)
	assert.Error(t, err)
}

func TestHashPassword_TooLong(t *testing.T) {
	t.Parallel()

	_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes+1), bcrypt.MinCost)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)

	_, err = HashPassword(strings.Repeat("a", MaxPasswordBytes), bcrypt.MinCost)
	assert.NoError(t, err)
}

func TestVerifyPassword_GarbageHash(t *testing.T) {
	t.Parallel()

	err := VerifyPassword("not-a-hash", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestValidBcryptCost(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidBcryptCost(bcrypt.MinCost))
	assert.True(t, ValidBcryptCost(bcrypt.MaxCost))
	assert.False(t, ValidBcryptCost(bcrypt.MinCost-1))
	assert.False(t, ValidBcryptCost(bcrypt.MaxCost+1))
}
