package utils

import (
	"testing"
	"time"

	"emoease-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestSessionJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", 2)
	assert.NoError(t, err)

	sessionID, err := ParseSessionJWT(token, "secret")
	assert.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)
}

func TestParseSessionJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", 2)
	assert.NoError(t, err)

	_, err = ParseSessionJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestDecodeUpstreamToken(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.ClaimRole:      "Doctor",
		constvars.ClaimName:      "Dr. B",
		constvars.ClaimProfileID: "profile-9",
		constvars.ClaimUserID:    "user-9",
		"exp":                    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("upstream-only-key"))
	assert.NoError(t, err)

	claims, err := DecodeUpstreamToken(signed)
	assert.NoError(t, err)
	assert.Equal(t, "Doctor", claims.Role)
	assert.Equal(t, "Dr. B", claims.Name)
	assert.Equal(t, "profile-9", claims.ProfileID)
	assert.Equal(t, "user-9", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestDecodeUpstreamTokenRequiresRoleClaim(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("upstream-only-key"))
	assert.NoError(t, err)

	_, err = DecodeUpstreamToken(signed)
	assert.Error(t, err)
}

func TestDecodeUpstreamTokenRequiresExpirationClaim(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.ClaimRole: "User",
	}).SignedString([]byte("upstream-only-key"))
	assert.NoError(t, err)

	_, err = DecodeUpstreamToken(signed)
	assert.Error(t, err)
}

func TestDecodeUpstreamTokenRejectsGarbage(t *testing.T) {
	_, err := DecodeUpstreamToken("not-a-jwt")
	assert.Error(t, err)
}
