package transport

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/taskmgr/client/auth/store"
	"go.uber.org/zap"
)

type Option func(*RoundTripper)

// WithStore sets store
func WithStore(store store.Store) Option {
	return func(t *RoundTripper) {
		t.store = store
	}
}

// WithRefresher sets the token exchange collaborator
func WithRefresher(refresher Refresher) Option {
	return func(t *RoundTripper) {
		t.refresher = refresher
	}
}

// WithTransport sets the underlying transport
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithHeader adds a default header sent with every request
func WithHeader(key, value string) Option {
	return func(t *RoundTripper) {
		t.header.Set(key, value)
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(t *RoundTripper) {
		t.logger = logger
	}
}

// WithMetrics registers refresh counters with registerer
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(t *RoundTripper) {
		t.registerer = registerer
	}
}
