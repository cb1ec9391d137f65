package refresh

import (
	"net/http"

	"go.uber.org/zap"
)

type Option func(c *Client)

// WithHTTPClient sets the http client used for token exchange
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithPath overrides the token exchange path
func WithPath(path string) Option {
	return func(c *Client) {
		c.path = path
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
