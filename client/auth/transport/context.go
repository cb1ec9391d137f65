package transport

import (
	"context"
)

type contextKey string

const skipRefreshKey contextKey = "skipRefresh"

// WithoutRefresh marks requests whose 401 response must be returned as is,
// e.g. login where a rejected password says nothing about the stored session.
func WithoutRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipRefreshKey, true)
}

func refreshDisabled(ctx context.Context) bool {
	if v := ctx.Value(skipRefreshKey); v != nil {
		disabled, _ := v.(bool)
		return disabled
	}
	return false
}
