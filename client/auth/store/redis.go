package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
)

// RedisStore keeps the pair in a redis hash so several processes can share one session.
type RedisStore struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

// RedisOption customises RedisStore
type RedisOption func(s *RedisStore)

// WithTTL expires the hash after ttl of inactivity, zero keeps it forever.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

// NewRedisStore creates a redis backed store under key.
func NewRedisStore(client redis.Cmdable, key string, options ...RedisOption) *RedisStore {
	ret := &RedisStore{client: client, key: key}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (r *RedisStore) Init(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis unavailable: %w", err)
	}
	return nil
}

func (r *RedisStore) LookupToken(ctx context.Context) (*oauth2.Token, error) {
	values, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	access, refresh := values[AccessTokenKey], values[RefreshTokenKey]
	if access == "" && refresh == "" {
		return nil, nil
	}
	return NewToken(access, refresh), nil
}

func (r *RedisStore) Set(ctx context.Context, accessToken, refreshToken string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.key, AccessTokenKey, accessToken, RefreshTokenKey, refreshToken)
		if r.ttl > 0 {
			pipe.Expire(ctx, r.key, r.ttl)
		}
		return nil
	})
	return err
}

func (r *RedisStore) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}
