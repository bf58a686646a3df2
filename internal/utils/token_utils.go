package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
)

// AppClaims are the JWT claims issued at login. Subject carries the user ID;
// the role claim is what the filter layer scopes rows on.
type AppClaims struct {
	Role domain.UserRole `json:"role"`
	Nome string          `json:"nome"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a signed token for the given user.
func GenerateJWT(user *domain.User, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	claims := AppClaims{
		Role: user.Role,
		Nome: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string, validates its signature and
// standard claims, and returns the application claims.
func ParseAndValidateJWT(tokenString string, secretKey string) (*AppClaims, error) {
	claims := &AppClaims{}

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
	return claims, nil
}
