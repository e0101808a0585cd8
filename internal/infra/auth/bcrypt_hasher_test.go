package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("road-trip-2026")

	require.NoError(t, err)
	assert.NotEqual(t, "road-trip-2026", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher()
	hash, err := hasher.Hash("road-trip-2026")
	require.NoError(t, err)

	assert.True(t, hasher.Check("road-trip-2026", hash))
	assert.False(t, hasher.Check("road-trip-2025", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("road-trip-2026", "not-a-hash"))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same")
	require.NoError(t, err)
	second, err := hasher.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
