package utils

import (
	"errors"
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the JWT claims of a session token. The subject is the session ID.
type SessionClaims struct {
	Role       domain.Role `json:"role"`
	VendorName string      `json:"vendorName,omitempty"`
	jwt.RegisteredClaims
}

// GenerateSessionJWT signs a token for the session.
func GenerateSessionJWT(session *domain.Session, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiryDuration)
	claims := SessionClaims{
		Role:       session.Role,
		VendorName: session.VendorName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   session.SessionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseSessionJWT parses a token string, validates its signature and standard claims.
func ParseSessionJWT(tokenString string, secretKey string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no session subject")
	}
	return claims, nil
}
