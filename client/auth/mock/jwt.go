package mock

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

var errStaleToken = errors.New("token expired")

type claims struct {
	Type       string `json:"typ"`
	Generation int64  `json:"gen"`
	jwt.RegisteredClaims
}

// createJWT creates a signed JWT for userID with the given type and expiry
func (s *Service) createJWT(userID, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Type:       tokenType,
		Generation: s.generation.Load(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	})
	return token.SignedString(s.secret)
}

// parseJWT validates a token of the expected type and returns its subject
func (s *Service) parseJWT(tokenString, tokenType string) (string, error) {
	parsed := &claims{}
	_, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if parsed.Type != tokenType {
		return "", fmt.Errorf("unexpected token type: %v", parsed.Type)
	}
	if tokenType == accessTokenType && parsed.Generation != s.generation.Load() {
		return "", errStaleToken
	}
	return parsed.Subject, nil
}
