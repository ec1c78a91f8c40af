// Package redis provides a cache.Cache backed by Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careerguide/pkg/cache"

	goredis "github.com/redis/go-redis/v9"
)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every key.
	Prefix string
}

// Cache implements cache.Cache on top of a go-redis client.
type Cache struct {
	client goredis.UniversalClient
	prefix string
}

var _ cache.Cache = (*Cache)(nil)

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, opts Options) (*Cache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return NewWithClient(client, opts.Prefix), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client goredis.UniversalClient, prefix string) *Cache {
	return &Cache{client: client, prefix: prefix}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not get %s from redis: %w", key, err)
	}

	return b, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("could not set %s in redis: %w", key, err)
	}

	return nil
}

// Close closes the underlying client.
func (c *Cache) Close() error {
	return c.client.Close() //nolint: wrapcheck
}
