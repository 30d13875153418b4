package cache

import (
	"context"
	"time"
)

// Cache is the injected best-effort key/value capability used for derived
// read models (category score rollups). Every implementation must be safe to
// skip: a Get miss and a failed Set are both non-errors for callers.
type Cache interface {
	// Get returns the stored bytes, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Noop satisfies Cache with misses only. Used when REDIS_ADDR is unset and in
// tests.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (*Noop) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }

func (*Noop) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (*Noop) Delete(ctx context.Context, key string) error { return nil }
