package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_NeverPlaintext(t *testing.T) {
	hash, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "pw", hash)
	assert.NoError(t, ComparePassword(hash, "pw"))
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_InvalidCostFallsBackToDefault(t *testing.T) {
	hash, err := HashPassword("pw", 100)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestComparePassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)

	for _, wrong := range []string{"", "PW", "pw ", "pw2", "another"} {
		assert.ErrorIs(t, ComparePassword(hash, wrong), ErrPasswordMismatch, wrong)
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("not-a-hash", "pw")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
