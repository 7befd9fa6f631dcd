package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
}

func TestHashPasswordProducesUniqueHashes(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
}
