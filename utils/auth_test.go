package utils_test

import (
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llcart/utils"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("id-1", "asha@example.com", "buyer")
	require.NoError(t, err)

	claims := &utils.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return utils.JwtKey, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "id-1", claims.ID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "buyer", claims.Role)
	assert.Greater(t, claims.ExpiresAt, int64(0))
}

func TestGenerateSecureToken(t *testing.T) {
	first := utils.GenerateSecureToken()
	second := utils.GenerateSecureToken()

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}
