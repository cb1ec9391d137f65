package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/scy"
	_ "github.com/viant/scy/kms/blowfish"
	"github.com/viant/taskmgr/schema"
	"golang.org/x/oauth2"
)

// DefaultKey is the scy key used when none is supplied.
const DefaultKey = "blowfish://default"

// SecureStore persists the pair encrypted with a scy key.
type SecureStore struct {
	mu      sync.Mutex
	URL     string
	Key     string
	secrets *scy.Service
	fs      afs.Service
	memory  *memoryStore
}

// NewSecureStore creates an encrypted store at URL, key defaults to DefaultKey
func NewSecureStore(URL, key string) *SecureStore {
	if key == "" {
		key = DefaultKey
	}
	return &SecureStore{
		URL:     URL,
		Key:     key,
		secrets: scy.New(),
		fs:      afs.New(),
		memory:  newMemoryStore(),
	}
}

func (s *SecureStore) resource() *scy.Resource {
	return scy.NewResource(&schema.TokenPair{}, s.URL, s.Key)
}

func (s *SecureStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exists, err := s.fs.Exists(ctx, s.URL)
	if err != nil {
		return err
	}
	if !exists {
		s.memory.set(nil)
		return nil
	}
	secret, err := s.secrets.Load(ctx, s.resource())
	if err != nil {
		return fmt.Errorf("failed to load credentials %v: %w", s.URL, err)
	}
	pair, ok := secret.Target.(*schema.TokenPair)
	if !ok || pair == nil || (pair.AccessToken == "" && pair.RefreshToken == "") {
		s.memory.set(nil)
		return nil
	}
	s.memory.set(NewToken(pair.AccessToken, pair.RefreshToken))
	return nil
}

func (s *SecureStore) LookupToken(ctx context.Context) (*oauth2.Token, error) {
	return s.memory.LookupToken(ctx)
}

func (s *SecureStore) Set(ctx context.Context, accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pair := &schema.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}
	if err := s.secrets.Store(ctx, scy.NewSecret(pair, s.resource())); err != nil {
		return fmt.Errorf("failed to store credentials %v: %w", s.URL, err)
	}
	s.memory.set(NewToken(accessToken, refreshToken))
	return nil
}

func (s *SecureStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memory.set(nil)
	exists, err := s.fs.Exists(ctx, s.URL)
	if err != nil || !exists {
		return err
	}
	return s.fs.Delete(ctx, s.URL)
}
