package utils

import (
	"testing"
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionJWT_RoundTrip(t *testing.T) {
	session := &domain.Session{SessionID: "s-1", Role: domain.RoleVendor, VendorName: "Juan"}

	token, expiresAt, err := GenerateSessionJWT(session, "secret", time.Hour, "salesmaster")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Second)

	claims, err := ParseSessionJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "s-1", claims.Subject)
	assert.Equal(t, domain.RoleVendor, claims.Role)
	assert.Equal(t, "Juan", claims.VendorName)
	assert.Equal(t, "salesmaster", claims.Issuer)
}

func TestParseSessionJWT_Rejects(t *testing.T) {
	session := &domain.Session{SessionID: "s-1", Role: domain.RoleAdministrator}

	token, _, err := GenerateSessionJWT(session, "secret", time.Hour, "salesmaster")
	require.NoError(t, err)
	_, err = ParseSessionJWT(token, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	expired, _, err := GenerateSessionJWT(session, "secret", -time.Minute, "salesmaster")
	require.NoError(t, err)
	_, err = ParseSessionJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = ParseSessionJWT("not-a-token", "secret")
	assert.Error(t, err)
}
