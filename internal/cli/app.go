// Package cli implements the taskctl command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/taskmgr"
	"github.com/viant/taskmgr/client"
	"github.com/viant/taskmgr/internal/config"
	"github.com/viant/taskmgr/internal/logger"
	"github.com/viant/taskmgr/schema"
	"go.uber.org/zap"
)

// App holds state shared by commands of one invocation
type App struct {
	ctx     context.Context
	options *Options
	out     io.Writer
	fs      afs.Service
	client  client.Interface
	logger  *zap.Logger
}

// Client lazily builds the task manager client from configuration and global flags
func (a *App) Client() (client.Interface, error) {
	if a.client != nil {
		return a.client, nil
	}
	cfg, err := config.Load(a.options.Config)
	if err != nil {
		return nil, err
	}
	a.options.apply(cfg)
	if a.logger, err = logger.New(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %v: %w", cfg.LogLevel, err)
	}
	clientOptions := cfg.ClientOptions()
	clientOptions.Logger = a.logger
	if a.client, err = taskmgr.NewClient(a.ctx, clientOptions); err != nil {
		return nil, err
	}
	return a.client, nil
}

// print writes v as JSON when --json is set, otherwise calls text
func (a *App) print(v interface{}, text func(w io.Writer)) error {
	if a.options.JSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, string(data))
		return err
	}
	text(a.out)
	return nil
}

// file reads an upload from any afs supported location
func (a *App) file(location string) (*schema.File, error) {
	if location == "" {
		return nil, nil
	}
	data, err := a.fs.DownloadWithURL(a.ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", location, err)
	}
	name := filepath.Base(location)
	return &schema.File{
		Name:        name,
		ContentType: mime.TypeByExtension(strings.ToLower(filepath.Ext(name))),
		Content:     strings.NewReader(string(data)),
	}, nil
}

func printUser(w io.Writer, user *schema.User) {
	role := "user"
	if user.IsAdmin {
		role = "admin"
	}
	status := "active"
	if user.IsBlocked {
		status = "blocked"
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", user.ID, user.Email, user.FullName, role, status)
}

func printTask(w io.Writer, task *schema.Task) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", task.ID, task.CreatedAt.Format("2006-01-02 15:04"), task.Title, task.Description)
}
