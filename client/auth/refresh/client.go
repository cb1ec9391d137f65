package refresh

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/viant/afs/url"
	"github.com/viant/taskmgr/client/auth/store"
	"github.com/viant/taskmgr/schema"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// ErrEmptyAccessToken is returned when the endpoint accepted the refresh token but issued no access token.
var ErrEmptyAccessToken = errors.New("refresh response carried no access token")

// Client calls the token exchange endpoint.
type Client struct {
	baseURL    string
	path       string
	httpClient *http.Client
	logger     *zap.Logger
}

// Refresh posts the refresh token and returns the newly issued pair. When the
// endpoint omits a refresh token the supplied one is kept.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	payload, err := json.Marshal(&schema.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	URL := url.Join(c.baseURL, strings.TrimPrefix(c.path, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, URL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %v: %w", URL, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read refresh response: %w", err)
	}
	envelope := &schema.Envelope{}
	decodeErr := json.Unmarshal(body, envelope)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := ""
		if decodeErr == nil {
			message = envelope.Message
		}
		c.logger.Debug("token exchange rejected", zap.Int("status", resp.StatusCode))
		return nil, schema.NewError(resp.StatusCode, message)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("invalid refresh response: %w", decodeErr)
	}
	pair := &schema.TokenPair{}
	if err = envelope.Decode(pair); err != nil {
		return nil, fmt.Errorf("invalid refresh response data: %w", err)
	}
	if pair.AccessToken == "" {
		return nil, ErrEmptyAccessToken
	}
	if pair.RefreshToken == "" {
		pair.RefreshToken = refreshToken
	}
	return store.NewToken(pair.AccessToken, pair.RefreshToken), nil
}

// New creates a token exchange client for the backend at baseURL
func New(baseURL string, options ...Option) *Client {
	ret := &Client{
		baseURL:    baseURL,
		path:       schema.PathRefreshToken,
		httpClient: &http.Client{Transport: http.DefaultTransport},
		logger:     zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
