package utils

import (
	"time"

	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateSessionJWT signs the gateway's own session token wrapping the
// Redis session id.
func GenerateSessionJWT(sessionID, secret string, expTimeInHour int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(expTimeInHour) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

// ParseSessionJWT verifies a gateway session token and returns the session id.
func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalid(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims["session_id"].(string); ok {
			return sessionID, nil
		}
	}

	return "", exceptions.ErrTokenInvalid(nil)
}

// UpstreamClaims is the set of claims the gateway consumes from the auth
// service token.
type UpstreamClaims struct {
	Role      string
	Name      string
	ProfileID string
	UserID    string
	ExpiresAt time.Time
}

// DecodeUpstreamToken extracts claims from the auth service token without
// verifying its signature; the signing key stays with the issuing service.
// The expiry claim is returned as-is, callers decide what an expired token
// means.
func DecodeUpstreamToken(tokenString string) (*UpstreamClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, exceptions.ErrTokenInvalid(err)
	}

	role, ok := claims[constvars.ClaimRole].(string)
	if !ok || role == "" {
		return nil, exceptions.ErrTokenClaimMissing(nil, constvars.ClaimRole)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, exceptions.ErrTokenClaimMissing(nil, "exp")
	}

	decoded := &UpstreamClaims{
		Role:      role,
		ExpiresAt: time.Unix(int64(exp), 0),
	}
	if name, ok := claims[constvars.ClaimName].(string); ok {
		decoded.Name = name
	}
	if profileID, ok := claims[constvars.ClaimProfileID].(string); ok {
		decoded.ProfileID = profileID
	}
	if userID, ok := claims[constvars.ClaimUserID].(string); ok {
		decoded.UserID = userID
	}

	return decoded, nil
}
