package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, h.Verify("secret1", hash))
	assert.False(t, h.Verify("secret2", hash))
}

func TestHash_SaltedOutputDiffers(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	h1, err := h.Hash("secret1")
	require.NoError(t, err)
	h2, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "salted hashes of the same password must differ")
	assert.True(t, h.Verify("secret1", h1))
	assert.True(t, h.Verify("secret1", h2))
}

func TestVerify_MalformedHash(t *testing.T) {
	h := NewHasher(0)

	assert.False(t, h.Verify("secret1", ""))
	assert.False(t, h.Verify("secret1", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("secret1", "$2a$10$truncated"))
}

func TestNewHasher_DefaultCost(t *testing.T) {
	h := NewHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewHasher(bcrypt.MinCost)
	assert.Equal(t, bcrypt.MinCost, h.cost)
}
