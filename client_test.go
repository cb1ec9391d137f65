package taskmgr

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/taskmgr/client/auth/mock"
	"github.com/viant/taskmgr/schema"
)

func TestNewClient(t *testing.T) {
	ctx := context.Background()
	backend, server := mock.NewServer()
	defer server.Close()
	_, err := backend.AddUser("ann@example.com", "Ann", "secret", false)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	URL := filepath.Join(t.TempDir(), "credentials.json")
	cli, err := NewClient(ctx, &ClientOptions{
		BaseURL:    server.URL,
		Store:      ClientStore{Type: StoreFile, URL: URL},
		Registerer: registry,
	})
	require.NoError(t, err)
	_, err = cli.Login(ctx, &schema.Credentials{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)

	backend.ExpireAccessTokens()
	reopened, err := NewClient(ctx, &ClientOptions{
		BaseURL:    server.URL,
		Store:      ClientStore{Type: StoreFile, URL: URL},
		Registerer: registry,
	})
	require.NoError(t, err)
	assert.True(t, reopened.Authenticated(ctx))
	user, err := reopened.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.FullName)
	assert.Equal(t, 1, backend.RefreshCalls())

	count, err := testutil.GatherAndCount(registry, "taskmgr_client_refresh_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewClient_Validation(t *testing.T) {
	var testCases = []struct {
		description string
		options     *ClientOptions
	}{
		{description: "missing base URL", options: &ClientOptions{}},
		{description: "unknown store", options: &ClientOptions{BaseURL: "http://localhost", Store: ClientStore{Type: "floppy"}}},
		{description: "redis without address", options: &ClientOptions{BaseURL: "http://localhost", Store: ClientStore{Type: StoreRedis}}},
	}
	for _, tc := range testCases {
		_, err := NewClient(context.Background(), tc.options)
		assert.Error(t, err, tc.description)
	}
}

func TestClientStore_Init(t *testing.T) {
	s := &ClientStore{Type: StoreSecure}
	s.Init()
	assert.Equal(t, "credentials.enc", filepath.Base(s.URL))
	assert.Equal(t, "taskctl:credentials", s.RedisKey)

	s = &ClientStore{}
	s.Init()
	assert.Equal(t, StoreMemory, s.Type)
	assert.Empty(t, s.URL)
}
