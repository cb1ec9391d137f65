package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Init(ctx))

	token, err := s.LookupToken(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)
	_, ok := AccessToken(ctx, s)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "a1", "r1"))
	access, ok := AccessToken(ctx, s)
	assert.True(t, ok)
	assert.Equal(t, "a1", access)
	refresh, ok := RefreshToken(ctx, s)
	assert.True(t, ok)
	assert.Equal(t, "r1", refresh)

	token, _ = s.LookupToken(ctx)
	token.AccessToken = "mutated"
	access, _ = AccessToken(ctx, s)
	assert.Equal(t, "a1", access, "lookup should return a copy")

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
	_, ok = RefreshToken(ctx, s)
	assert.False(t, ok)
}

func TestWithToken(t *testing.T) {
	s := NewMemoryStore(WithToken("a", "r"))
	token, err := s.LookupToken(context.Background())
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, "a", token.AccessToken)
	assert.Equal(t, "r", token.RefreshToken)
}

func TestNewToken(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiry),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	var testCases = []struct {
		description string
		access      string
		hasExpiry   bool
	}{
		{description: "jwt with exp", access: signed, hasExpiry: true},
		{description: "opaque token", access: "opaque", hasExpiry: false},
		{description: "empty token", access: "", hasExpiry: false},
	}
	for _, tc := range testCases {
		token := NewToken(tc.access, "r")
		if tc.hasExpiry {
			assert.True(t, expiry.Equal(token.Expiry), tc.description)
			continue
		}
		assert.True(t, token.Expiry.IsZero(), tc.description)
	}
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	URL := filepath.Join(t.TempDir(), "taskctl", "credentials.json")

	s := NewFileStore(URL)
	require.NoError(t, s.Init(ctx))
	token, err := s.LookupToken(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)

	require.NoError(t, s.Set(ctx, "a1", "r1"))
	require.NoError(t, s.Set(ctx, "a2", "r2"))
	info, err := os.Stat(URL)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	_, err = os.Stat(URL + ".tmp")
	assert.True(t, os.IsNotExist(err))

	reopened := NewFileStore(URL)
	require.NoError(t, reopened.Init(ctx))
	token, err = reopened.LookupToken(ctx)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "a2", token.AccessToken)
	assert.Equal(t, "r2", token.RefreshToken)

	require.NoError(t, reopened.Clear(ctx))
	require.NoError(t, reopened.Clear(ctx))

	again := NewFileStore(URL)
	require.NoError(t, again.Init(ctx))
	token, err = again.LookupToken(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestSecureStore(t *testing.T) {
	ctx := context.Background()
	URL := filepath.Join(t.TempDir(), "credentials.enc")

	s := NewSecureStore(URL, "")
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.Set(ctx, "a1", "r1"))

	reopened := NewSecureStore(URL, "")
	require.NoError(t, reopened.Init(ctx))
	token, err := reopened.LookupToken(ctx)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "a1", token.AccessToken)
	assert.Equal(t, "r1", token.RefreshToken)

	require.NoError(t, reopened.Clear(ctx))
	again := NewSecureStore(URL, "")
	require.NoError(t, again.Init(ctx))
	token, err = again.LookupToken(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)
}
