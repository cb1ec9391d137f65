package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/taskmgr/client"
	"github.com/viant/taskmgr/client/auth/mock"
	"github.com/viant/taskmgr/schema"
)

func TestRun(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	backend, server := mock.NewServer()
	defer server.Close()
	admin, err := backend.AddUser("admin@example.com", "Admin", "secret", true)
	require.NoError(t, err)
	bob, err := backend.AddUser("bob@example.com", "Bob", "secret", false)
	require.NoError(t, err)

	dir := t.TempDir()
	image := filepath.Join(dir, "chart.png")
	require.NoError(t, os.WriteFile(image, []byte("png"), 0o600))
	global := []string{"--url", server.URL, "--store", "file", "--store-url", filepath.Join(dir, "credentials.json")}
	run := func(args ...string) (string, error) {
		out := &bytes.Buffer{}
		err := Run(context.Background(), append(append([]string{}, global...), args...), out)
		return out.String(), err
	}

	out, err := run("login", "-e", "admin@example.com", "-p", "secret")
	require.NoError(t, err)
	assert.Equal(t, "logged in as admin@example.com\n", out)

	_, err = run("task", "create", "-t", "quarterly report", "-d", "q3", "-i", image)
	require.NoError(t, err)

	out, err = run("--json", "task", "list", "--search", "report")
	require.NoError(t, err)
	var tasks []*schema.Task
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "/uploads/chart.png", tasks[0].Image)

	out, err = run("task", "delete", "--id", tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "deleted "+tasks[0].ID+"\n", out)

	out, err = run("admin", "block", bob.ID)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "blocked"))

	out, err = run("whoami")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, admin.ID))

	backend.ExpireAccessTokens()
	_, err = run("profile", "update", "-n", "Root")
	require.NoError(t, err)
	assert.Equal(t, 1, backend.RefreshCalls())

	_, err = run("logout")
	require.NoError(t, err)
	_, err = run("whoami")
	require.Error(t, err)
	assert.True(t, client.IsReauthenticationRequired(err))
}

func TestRun_Usage(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
	}{
		{description: "missing command", args: []string{}},
		{description: "missing required flag", args: []string{"--url", "http://localhost", "login", "-e", "a@b.c"}},
		{description: "invalid choice", args: []string{"--store", "floppy", "whoami"}},
	}
	for _, tc := range testCases {
		err := Run(context.Background(), tc.args, &bytes.Buffer{})
		assert.Error(t, err, tc.description)
	}
}
