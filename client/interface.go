package client

import (
	"context"

	"github.com/viant/taskmgr/schema"
)

// Interface defines the client interface for all exported methods
type Interface interface {
	// Do dispatches a request, possibly after transparent re-authentication
	Do(ctx context.Context, req *Request, out interface{}) error

	// Login authenticates with email and password
	Login(ctx context.Context, credentials *schema.Credentials) (*schema.LoginResult, error)

	// Register creates an account
	Register(ctx context.Context, registration *schema.Registration) (*schema.LoginResult, error)

	// Logout ends the session and clears local credentials
	Logout(ctx context.Context) error

	// Authenticated reports whether credentials are stored
	Authenticated(ctx context.Context) bool

	ListTasks(ctx context.Context, query *schema.TaskQuery) ([]*schema.Task, error)

	CreateTask(ctx context.Context, input *schema.TaskInput) (*schema.Task, error)

	UpdateTask(ctx context.Context, id string, input *schema.TaskInput) (*schema.Task, error)

	DeleteTask(ctx context.Context, id string) error

	// CurrentUser returns the logged in user
	CurrentUser(ctx context.Context) (*schema.User, error)

	UpdateAvatar(ctx context.Context, avatar *schema.File) (*schema.User, error)

	UpdateAccount(ctx context.Context, update *schema.AccountUpdate) (*schema.User, error)

	ChangePassword(ctx context.Context, change *schema.PasswordChange) error

	// ListUsers lists all accounts, admin only
	ListUsers(ctx context.Context) ([]*schema.User, error)

	BlockUser(ctx context.Context, id string) (*schema.User, error)

	UnblockUser(ctx context.Context, id string) (*schema.User, error)

	// BlockUsers blocks several accounts concurrently
	BlockUsers(ctx context.Context, ids ...string) ([]*schema.User, error)
}

// Ensure Client implements Interface
var _ Interface = (*Client)(nil)
