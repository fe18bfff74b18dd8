package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correctPassword123!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "correctPassword123!", hash)

	ok, err := CheckPasswordHash("correctPassword123!", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPasswordHashWrongPassword(t *testing.T) {
	hash, err := HashPassword("anotherPassword456!")
	require.NoError(t, err)

	ok, err := CheckPasswordHash("correctPassword123!", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	hash1, err := HashPassword("correctPassword123!")
	require.NoError(t, err)
	hash2, err := HashPassword("correctPassword123!")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestCheckPasswordHashMalformedHash(t *testing.T) {
	ok, err := CheckPasswordHash("correctPassword123!", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}
