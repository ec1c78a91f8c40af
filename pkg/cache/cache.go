// Package cache defines the small key/value cache used to memoize results
// derived from the career dataset.
//
//go:generate mockgen -package mockcache -source=cache.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores opaque values with a TTL. Implementations must be safe for
// concurrent use. A miss is reported with found=false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Nop is a Cache that never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }

// GetJSON reads key and decodes it into out.
func GetJSON(ctx context.Context, c Cache, key string, out any) (bool, error) {
	b, found, err := c.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}

	if err := json.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("could not decode cached value: %w", err)
	}

	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode cache value: %w", err)
	}

	return c.Set(ctx, key, b, ttl)
}
