package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "password124"))
	assert.False(t, CheckPassword("", "password123"))
}

func TestPasswordHashIsSalted(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)
	second, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
