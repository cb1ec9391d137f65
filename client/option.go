package client

import "go.uber.org/zap"

// Option represents option
type Option func(c *Client)

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithConcurrency bounds concurrent requests of bulk operations
func WithConcurrency(concurrency int) Option {
	return func(c *Client) {
		if concurrency > 0 {
			c.concurrency = concurrency
		}
	}
}
