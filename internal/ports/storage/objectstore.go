package storage

import (
	"context"
	"time"
)

// ObjectStore keeps rendered chart SVGs and static chakra assets.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
	GetObject(ctx context.Context, key string) ([]byte, error)
	ListObjects(ctx context.Context, prefix string) ([]string, error)
	GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
