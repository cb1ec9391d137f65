package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/viant/taskmgr/schema"
	"golang.org/x/sync/errgroup"
)

func (c *Client) ListUsers(ctx context.Context) ([]*schema.User, error) {
	result, err := send[[]*schema.User](ctx, c, NewRequest(http.MethodGet, schema.PathAdminUsers))
	if err != nil {
		return nil, err
	}
	return *result, nil
}

func (c *Client) BlockUser(ctx context.Context, id string) (*schema.User, error) {
	return send[schema.User](ctx, c, NewRequest(http.MethodPatch, schema.PathAdminBlock, WithParam("id", id)))
}

func (c *Client) UnblockUser(ctx context.Context, id string) (*schema.User, error) {
	return send[schema.User](ctx, c, NewRequest(http.MethodPatch, schema.PathAdminUnblock, WithParam("id", id)))
}

// BlockUsers blocks ids concurrently and stops at the first failure.
func (c *Client) BlockUsers(ctx context.Context, ids ...string) ([]*schema.User, error) {
	users := make([]*schema.User, len(ids))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(c.concurrency)
	for i, id := range ids {
		group.Go(func() error {
			user, err := c.BlockUser(groupCtx, id)
			if err != nil {
				return fmt.Errorf("failed to block %v: %w", id, err)
			}
			users[i] = user
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return users, nil
}
