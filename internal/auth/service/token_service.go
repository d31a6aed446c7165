package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/pablozoani/gl-exercise/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pablozoani/gl-exercise/internal/auth/domain"
	autherror "github.com/pablozoani/gl-exercise/internal/errors"
)

type TokenGenerator interface {
	Issue(user *domain.User) (string, error)
	Verify(tokenString string) (*jwt.RegisteredClaims, error)
}

// TokenService issues and verifies HS256 bearer tokens carrying the user's
// email as subject. Secret and lifetime are fixed at startup.
type TokenService struct {
	Secret      string
	TokenExpiry time.Duration
}

func NewTokenService(secret string, expirySeconds int) *TokenService {
	return &TokenService{
		Secret:      secret,
		TokenExpiry: time.Duration(expirySeconds) * time.Second,
	}
}

// Issue signs a token for the user. It refuses to issue for a user without
// an assigned ID so a token can never reference a not-yet-persisted record.
func (ts *TokenService) Issue(user *domain.User) (string, error) {
	if user.ID == "" {
		return "", autherror.ErrUserNotPersisted
	}

	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   user.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ts.TokenExpiry)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses and validates the given token string. Signature mismatch,
// malformed structure, and expiry all fail verification.
func (ts *TokenService) Verify(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
