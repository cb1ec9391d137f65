package store

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// NewToken creates a bearer token for the pair. When the access token is a JWT
// carrying an exp claim, the expiry is copied; the signature is not checked.
func NewToken(accessToken, refreshToken string) *oauth2.Token {
	ret := &oauth2.Token{
		TokenType:    "Bearer",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	if expiry, ok := expiryOf(accessToken); ok {
		ret.Expiry = expiry
	}
	return ret
}

func expiryOf(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func copyToken(token *oauth2.Token) *oauth2.Token {
	if token == nil {
		return nil
	}
	ret := *token
	return &ret
}
