package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("secret", 7, "admin@primehood.co.ke", "ADMIN", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "admin@primehood.co.ke", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret", 1, "a@b.co", "ADMIN", time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateJWTExpired(t *testing.T) {
	token, err := GenerateJWT("secret", 1, "a@b.co", "ADMIN", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
