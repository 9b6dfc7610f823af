package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJWTService_EmptySecret(t *testing.T) {
	err := InitJWTService("")
	assert.Error(t, err)
}

func TestSessionJWT_RoundTrip(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret"))

	token, err := GenerateSessionJWT("user-123", "robo@example.com", "Robo Fan")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifySessionJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "robo@example.com", claims.Email)
	assert.Equal(t, "Robo Fan", claims.Name)
	assert.Equal(t, "robomarket", claims.Issuer)
}

func TestSessionJWT_RejectsMissingFields(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret"))

	_, err := GenerateSessionJWT("", "robo@example.com", "")
	assert.Error(t, err)

	_, err = GenerateSessionJWT("user-123", "", "")
	assert.Error(t, err)
}

func TestSessionJWT_WrongSecret(t *testing.T) {
	require.NoError(t, InitJWTService("secret-a"))
	token, err := GenerateSessionJWT("user-123", "robo@example.com", "")
	require.NoError(t, err)

	require.NoError(t, InitJWTService("secret-b"))
	_, err = VerifySessionJWT(token)
	assert.Error(t, err)
}

func TestSessionJWT_Garbage(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret"))

	_, err := VerifySessionJWT("not-a-token")
	assert.Error(t, err)
}
