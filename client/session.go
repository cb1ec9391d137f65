package client

import (
	"context"
	"net/http"

	"github.com/viant/taskmgr/client/auth/store"
	"github.com/viant/taskmgr/client/auth/transport"
	"github.com/viant/taskmgr/schema"
	"go.uber.org/zap"
)

// Login authenticates and stores the issued pair. A rejected password is
// returned as a 401 *schema.Error without attempting a token refresh.
// Login and Register deliberately bypass refresh-on-401, unlike other calls.
func (c *Client) Login(ctx context.Context, credentials *schema.Credentials) (*schema.LoginResult, error) {
	req := NewRequest(http.MethodPost, schema.PathLogin, WithJSON(credentials))
	result, err := send[schema.LoginResult](transport.WithoutRefresh(ctx), c, req)
	if err != nil {
		return nil, err
	}
	if err = c.store.Set(ctx, result.AccessToken, result.RefreshToken); err != nil {
		return nil, err
	}
	return result, nil
}

// Register creates an account, the backend logs the new user in.
func (c *Client) Register(ctx context.Context, registration *schema.Registration) (*schema.LoginResult, error) {
	form := &Form{Fields: map[string]string{
		"email":    registration.Email,
		"fullName": registration.FullName,
		"password": registration.Password,
	}}
	if registration.Image != nil {
		form.Files = map[string]*schema.File{"image": registration.Image}
	}
	req := NewRequest(http.MethodPost, schema.PathRegister, WithForm(form))
	result, err := send[schema.LoginResult](transport.WithoutRefresh(ctx), c, req)
	if err != nil {
		return nil, err
	}
	if result.AccessToken != "" {
		if err = c.store.Set(ctx, result.AccessToken, result.RefreshToken); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Logout ends the session. Local credentials are cleared even when the backend
// call fails; that failure is still returned.
func (c *Client) Logout(ctx context.Context) error {
	err := c.Do(ctx, NewRequest(http.MethodPost, schema.PathLogout), nil)
	if clearErr := c.store.Clear(ctx); clearErr != nil {
		c.logger.Error("failed to clear credentials", zap.Error(clearErr))
		if err == nil {
			err = clearErr
		}
	}
	return err
}

// Authenticated reports whether an access token is stored
func (c *Client) Authenticated(ctx context.Context) bool {
	_, ok := store.AccessToken(ctx, c.store)
	return ok
}
