package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("secret123")
	require.NoError(t, err)

	// The hash must not leak the plaintext
	assert.NotEqual(t, "secret123", hashed)
	assert.NotContains(t, hashed, "secret123")

	assert.True(t, hasher.Verify("secret123", hashed))
	assert.False(t, hasher.Verify("wrongpass", hashed))
}

func TestVerifyRejectsGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher()
	assert.False(t, hasher.Verify("secret123", "not-a-bcrypt-hash"))
}

func TestHashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	// Same plaintext, different salts
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("secret123", first))
	assert.True(t, hasher.Verify("secret123", second))
}
