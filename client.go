package taskmgr

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/viant/taskmgr/client"
	"github.com/viant/taskmgr/client/auth/refresh"
	"github.com/viant/taskmgr/client/auth/store"
	"github.com/viant/taskmgr/client/auth/transport"
	"go.uber.org/zap"
)

// Store types
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreSecure = "secure"
	StoreRedis  = "redis"
	StoreSSM    = "ssm"
)

// ClientOptions
//
// defines options for configuring a task manager client.
type ClientOptions struct {
	BaseURL string        `yaml:"baseURL" json:"baseURL"  short:"u" long:"url" description:"backend API base URL"`
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"  long:"timeout" description:"request timeout"`
	Store   ClientStore   `yaml:"store,omitempty" json:"store,omitempty"`

	// Tokens, if set, is used instead of building a store from Store.
	Tokens store.Store `yaml:"-" json:"-"`
	// Logger defaults to a no-op logger.
	Logger *zap.Logger `yaml:"-" json:"-"`
	// Registerer receives refresh metrics when set.
	Registerer prometheus.Registerer `yaml:"-" json:"-"`
	// Transport is the underlying transport, http.DefaultTransport when nil.
	Transport http.RoundTripper `yaml:"-" json:"-"`
}

// ClientStore defines where credentials are kept.
type ClientStore struct {
	Type      string `yaml:"type" json:"type"  long:"store" description:"credential store type" choice:"memory" choice:"file" choice:"secure" choice:"redis" choice:"ssm"`
	URL       string `yaml:"url,omitempty" json:"url,omitempty"  long:"store-url" description:"credential file URL"`
	Key       string `yaml:"key,omitempty" json:"key,omitempty"  short:"k" long:"key" description:"encryption key, e.g. blowfish://default"`
	RedisAddr string `yaml:"redisAddr,omitempty" json:"redisAddr,omitempty"  long:"redis-addr" description:"redis address"`
	RedisKey  string `yaml:"redisKey,omitempty" json:"redisKey,omitempty"  long:"redis-key" description:"redis hash key"`
	SSMName   string `yaml:"ssmName,omitempty" json:"ssmName,omitempty"  long:"ssm-name" description:"SSM parameter name"`
}

func (c *ClientOptions) Init() {
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	c.Store.Init()
}

func (s *ClientStore) Init() {
	if s.Type == "" {
		s.Type = StoreMemory
	}
	if s.URL == "" && (s.Type == StoreFile || s.Type == StoreSecure) {
		s.URL = DefaultCredentialsURL(s.Type)
	}
	if s.RedisKey == "" {
		s.RedisKey = "taskctl:credentials"
	}
	if s.SSMName == "" {
		s.SSMName = "/taskctl/credentials"
	}
}

// DefaultCredentialsURL returns the credentials location under the user home
func DefaultCredentialsURL(storeType string) string {
	name := "credentials.json"
	if storeType == StoreSecure {
		name = "credentials.enc"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".taskctl", name)
	}
	return filepath.Join(home, ".taskctl", name)
}

// NewStore creates and initialises the configured credential store.
func (s *ClientStore) NewStore(ctx context.Context) (store.Store, error) {
	var ret store.Store
	switch s.Type {
	case StoreMemory:
		ret = store.NewMemoryStore()
	case StoreFile:
		ret = store.NewFileStore(expandHome(s.URL))
	case StoreSecure:
		ret = store.NewSecureStore(expandHome(s.URL), s.Key)
	case StoreRedis:
		if s.RedisAddr == "" {
			return nil, fmt.Errorf("redis store requires redis address")
		}
		ret = store.NewRedisStore(redis.NewClient(&redis.Options{Addr: s.RedisAddr}), s.RedisKey)
	case StoreSSM:
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config: %w", err)
		}
		ret = store.NewSSMStore(ssm.NewFromConfig(cfg), s.SSMName)
	default:
		return nil, fmt.Errorf("unsupported store type: %v", s.Type)
	}
	if err := ret.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialise %v store: %w", s.Type, err)
	}
	return ret, nil
}

// NewClient creates a task manager client with credential store and token refresh configured via ClientOptions.
func NewClient(ctx context.Context, options *ClientOptions) (*client.Client, error) {
	if options.BaseURL == "" {
		return nil, fmt.Errorf("base URL was empty")
	}
	options.Init()
	tokens := options.Tokens
	if tokens == nil {
		var err error
		if tokens, err = options.Store.NewStore(ctx); err != nil {
			return nil, err
		}
	}
	baseTransport := options.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	refresher := refresh.New(options.BaseURL,
		refresh.WithHTTPClient(&http.Client{Transport: baseTransport, Timeout: options.Timeout}),
		refresh.WithLogger(options.Logger))
	rt, err := transport.New(
		transport.WithStore(tokens),
		transport.WithRefresher(refresher),
		transport.WithTransport(baseTransport),
		transport.WithLogger(options.Logger),
		transport.WithMetrics(options.Registerer),
	)
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{Transport: rt, Timeout: options.Timeout}
	return client.New(options.BaseURL, httpClient, tokens, client.WithLogger(options.Logger)), nil
}

func expandHome(location string) string {
	if !strings.HasPrefix(location, "~/") {
		return location
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return location
	}
	return filepath.Join(home, location[2:])
}
