package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret1!", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "Secret1!", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	ok, err := CheckPassword(hash, "Secret1!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("Secret1!", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("Secret1!", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashPassword_UsesCost(t *testing.T) {
	hash, err := HashPassword("Secret1!", bcrypt.MinCost+1)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestHashPassword_InvalidCost(t *testing.T) {
	_, err := HashPassword("Secret1!", bcrypt.MaxCost+1)
	require.Error(t, err)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	ok, err := CheckPassword("plaintext-in-db", "Secret1!")
	require.Error(t, err)
	assert.False(t, ok)
}
