package utils

import (
	"testing"

	"github.com/ravi-64bit/streetwise/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.C.JWTSecret = "test-secret"

	access, refresh, err := GenerateTokens(RoleVendor, "vendor-123")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, RoleVendor, claims["role"])
	assert.Equal(t, "vendor-123", claims["vendor_id"])
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	config.C.JWTSecret = "test-secret"

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	config.C.JWTSecret = "test-secret"
	access, _, err := GenerateTokens(RoleVendor, "vendor-123")
	require.NoError(t, err)

	config.C.JWTSecret = "another-secret"
	_, err = ValidateToken(access)
	assert.Error(t, err)
}

func TestRefreshTokensIssueNewPair(t *testing.T) {
	config.C.JWTSecret = "test-secret"
	_, refresh, err := GenerateTokens(RoleVendor, "vendor-123")
	require.NoError(t, err)

	access2, refresh2, err := RefreshTokens(refresh)
	require.NoError(t, err)

	claims, err := ValidateToken(access2)
	require.NoError(t, err)
	assert.Equal(t, "vendor-123", claims["vendor_id"])

	_, err = ValidateToken(refresh2)
	assert.NoError(t, err)
}

func TestExtractVendorIDFromHeader(t *testing.T) {
	config.C.JWTSecret = "test-secret"
	access, _, err := GenerateTokens(RoleVendor, "vendor-123")
	require.NoError(t, err)

	id, err := ExtractVendorIDFromToken("Bearer " + access)
	require.NoError(t, err)
	assert.Equal(t, "vendor-123", id)

	_, err = ExtractVendorIDFromToken(access) // missing Bearer prefix
	assert.Error(t, err)
}
