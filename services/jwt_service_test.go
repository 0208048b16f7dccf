package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminJWTRoundTrip(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret"))

	token, err := GenerateAdminJWT("admin-id-1", "admin@kkengineering.in")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-id-1", claims.AdminID)
	assert.Equal(t, "admin@kkengineering.in", claims.Email)
	assert.Equal(t, "kkengineering-site", claims.Issuer)
}

func TestAdminJWTRejectsGarbage(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret"))

	_, err := VerifyAdminJWT("not.a.token")
	assert.Error(t, err)

	// A token signed with a different secret fails verification.
	require.NoError(t, InitJWTService("other-secret"))
	token, err := GenerateAdminJWT("admin-id-1", "admin@kkengineering.in")
	require.NoError(t, err)
	require.NoError(t, InitJWTService("test-secret"))
	_, err = VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestGenerateAdminJWTRequiresIdentity(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret"))

	_, err := GenerateAdminJWT("", "admin@kkengineering.in")
	assert.Error(t, err)
	_, err = GenerateAdminJWT("admin-id-1", "")
	assert.Error(t, err)
}
