package mock

import (
	"errors"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/viant/taskmgr/internal/collection"
	"github.com/viant/taskmgr/schema"
	"golang.org/x/crypto/bcrypt"
)

var errEmailTaken = errors.New("email already registered")

type account struct {
	user         schema.User
	passwordHash []byte
}

// Service is the mock backend state
type Service struct {
	secret        []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	accounts      *collection.SyncMap[string, *account]
	emails        *collection.SyncMap[string, string]
	tasks         *collection.SyncMap[string, *schema.Task]
	refreshTokens *collection.SyncMap[string, string]
	generation    atomic.Int64
	refreshCalls  atomic.Int64
	failRefresh   atomic.Bool
	refreshDelay  time.Duration
}

// Option customises Service
type Option func(s *Service)

// WithAccessTTL sets access token lifetime
func WithAccessTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.accessTTL = ttl
	}
}

// WithRefreshDelay slows down the exchange endpoint, useful to widen concurrency windows
func WithRefreshDelay(delay time.Duration) Option {
	return func(s *Service) {
		s.refreshDelay = delay
	}
}

// New creates a mock backend
func New(options ...Option) *Service {
	ret := &Service{
		secret:        []byte(uuid.NewString()),
		accessTTL:     time.Hour,
		refreshTTL:    24 * time.Hour,
		accounts:      collection.NewSyncMap[string, *account](),
		emails:        collection.NewSyncMap[string, string](),
		tasks:         collection.NewSyncMap[string, *schema.Task](),
		refreshTokens: collection.NewSyncMap[string, string](),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// NewServer starts an httptest server running a fresh backend
func NewServer(options ...Option) (*Service, *httptest.Server) {
	service := New(options...)
	return service, httptest.NewServer(service.Handler())
}

// AddUser registers an account directly
func (s *Service) AddUser(email, fullName, password string, admin bool) (*schema.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	anAccount := &account{
		user: schema.User{
			ID:        uuid.NewString(),
			Email:     strings.ToLower(email),
			FullName:  fullName,
			IsAdmin:   admin,
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: hash,
	}
	if !s.emails.PutIfAbsent(anAccount.user.Email, anAccount.user.ID) {
		return nil, errEmailTaken
	}
	s.accounts.Put(anAccount.user.ID, anAccount)
	user := anAccount.user
	return &user, nil
}

// IssueTokens creates a valid pair for the user
func (s *Service) IssueTokens(userID string) (*schema.TokenPair, error) {
	access, err := s.createJWT(userID, accessTokenType, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.createJWT(userID, refreshTokenType, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	s.refreshTokens.Put(refresh, userID)
	return &schema.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ExpireAccessTokens invalidates every access token issued so far; refresh tokens stay valid.
func (s *Service) ExpireAccessTokens() {
	s.generation.Add(1)
}

// FailRefresh makes the exchange endpoint reject every refresh token
func (s *Service) FailRefresh(fail bool) {
	s.failRefresh.Store(fail)
}

// RefreshCalls returns the number of exchange requests received
func (s *Service) RefreshCalls() int {
	return int(s.refreshCalls.Load())
}

// User returns a snapshot of a stored account
func (s *Service) User(id string) (*schema.User, bool) {
	anAccount, ok := s.accounts.Get(id)
	if !ok {
		return nil, false
	}
	user := anAccount.user
	return &user, true
}

// Tasks returns the number of stored tasks
func (s *Service) Tasks() int {
	return s.tasks.Len()
}

func (s *Service) revokeRefreshTokens(userID string) {
	var revoked []string
	s.refreshTokens.Range(func(token string, owner string) bool {
		if owner == userID {
			revoked = append(revoked, token)
		}
		return true
	})
	for _, token := range revoked {
		s.refreshTokens.Delete(token)
	}
}
