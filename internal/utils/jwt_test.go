package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"
	token, err := GenerateJWT(42, secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.NotEmpty(t, claims.ID) // Token ID drives the sign-out denylist
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "right-secret")
	require.NoError(t, err)

	_, err = ParseJWT(token, "wrong-secret")
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", "secret")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	a, err := GenerateJWT(1, "secret")
	require.NoError(t, err)
	b, err := GenerateJWT(1, "secret")
	require.NoError(t, err)

	ca, err := ParseJWT(a, "secret")
	require.NoError(t, err)
	cb, err := ParseJWT(b, "secret")
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}
