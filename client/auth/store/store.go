package store

import (
	"context"
	"sync"

	"golang.org/x/oauth2"
)

// Persistence keys of the two token entries.
const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
)

// Store is a pluggable persistence layer for the credential pair.
type Store interface {
	// Init loads persisted state; call it once on application start.
	Init(ctx context.Context) error
	// LookupToken returns a copy of the stored pair, or nil when no credentials are stored.
	LookupToken(ctx context.Context) (*oauth2.Token, error)
	// Set records both tokens as one pair.
	Set(ctx context.Context, accessToken, refreshToken string) error
	// Clear removes all stored credentials; clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

// AccessToken returns the stored access token
func AccessToken(ctx context.Context, s Store) (string, bool) {
	token, err := s.LookupToken(ctx)
	if err != nil || token == nil || token.AccessToken == "" {
		return "", false
	}
	return token.AccessToken, true
}

// RefreshToken returns the stored refresh token
func RefreshToken(ctx context.Context, s Store) (string, bool) {
	token, err := s.LookupToken(ctx)
	if err != nil || token == nil || token.RefreshToken == "" {
		return "", false
	}
	return token.RefreshToken, true
}

type MemoryStoreOption func(*memoryStore)

// WithToken seeds the memory store with a pair
func WithToken(accessToken, refreshToken string) MemoryStoreOption {
	return func(m *memoryStore) {
		m.token = NewToken(accessToken, refreshToken)
	}
}

type memoryStore struct {
	mu    sync.RWMutex
	token *oauth2.Token
}

func (m *memoryStore) Init(ctx context.Context) error {
	return nil
}

func (m *memoryStore) LookupToken(ctx context.Context) (*oauth2.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyToken(m.token), nil
}

func (m *memoryStore) Set(ctx context.Context, accessToken, refreshToken string) error {
	m.set(NewToken(accessToken, refreshToken))
	return nil
}

func (m *memoryStore) Clear(ctx context.Context) error {
	m.set(nil)
	return nil
}

func (m *memoryStore) set(token *oauth2.Token) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func NewMemoryStore(options ...MemoryStoreOption) Store {
	return newMemoryStore(options...)
}

func newMemoryStore(options ...MemoryStoreOption) *memoryStore {
	ret := &memoryStore{}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
