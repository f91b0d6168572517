// Package auth issues and validates the session tokens handed out by
// the simulated phone/OTP flow.
package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/hawkerbazaar/storefront/internal/domain"
)

const sessionTTL = 24 * time.Hour

func secret() []byte {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("dev-only-secret")
}

type Claims struct {
	Name  string      `json:"name"`
	Phone string      `json:"phone"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the given user. The token is
// what a real backend would return from OTP verification; here it only
// carries the identity the mock invented.
func GenerateToken(user *domain.User) (string, error) {
	claims := Claims{
		Name:  user.Name,
		Phone: user.Phone,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// UserFromToken restores the user a session token was issued for.
func UserFromToken(tokenStr string) (*domain.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return &domain.User{
		ID:    claims.Subject,
		Name:  claims.Name,
		Phone: claims.Phone,
		Role:  claims.Role,
	}, nil
}
