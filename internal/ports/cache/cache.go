package cache

import (
	"context"
	"time"
)

// Cache is the key/value cache used for positions, geocoding results and
// generated narratives.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}
