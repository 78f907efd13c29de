package cache

import (
	"context"
	"time"
)

// Cache defines the interface for response caching
type Cache interface {
	// Get returns the cached value for key; found is false on a miss
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Health checks if the cache backend is reachable
	Health(ctx context.Context) error

	// Close releases the cache connection
	Close() error
}

// noopCache never stores anything
type noopCache struct{}

// NewNoop returns a cache that always misses
func NewNoop() Cache {
	return noopCache{}
}

func (noopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (noopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (noopCache) Health(ctx context.Context) error {
	return nil
}

func (noopCache) Close() error {
	return nil
}
