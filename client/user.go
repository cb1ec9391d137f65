package client

import (
	"context"
	"net/http"

	"github.com/viant/taskmgr/schema"
)

func (c *Client) CurrentUser(ctx context.Context) (*schema.User, error) {
	return send[schema.User](ctx, c, NewRequest(http.MethodGet, schema.PathCurrentUser))
}

// UpdateAvatar uploads a new profile picture
func (c *Client) UpdateAvatar(ctx context.Context, avatar *schema.File) (*schema.User, error) {
	form := &Form{Files: map[string]*schema.File{"avatar": avatar}}
	return send[schema.User](ctx, c, NewRequest(http.MethodPatch, schema.PathAvatar, WithForm(form)))
}

func (c *Client) UpdateAccount(ctx context.Context, update *schema.AccountUpdate) (*schema.User, error) {
	return send[schema.User](ctx, c, NewRequest(http.MethodPatch, schema.PathUpdateProfile, WithJSON(update)))
}

func (c *Client) ChangePassword(ctx context.Context, change *schema.PasswordChange) error {
	return c.Do(ctx, NewRequest(http.MethodPatch, schema.PathChangePassword, WithJSON(change)), nil)
}
