package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"log/slog"

	"github.com/minio/minio-go/v7"

	"github.com/vbautistacode/etheria/internal/ports/storage"
)

// Client wraps minio.Client and implements storage.ObjectStore.
type Client struct {
	client *minio.Client
	bucket string
	log    *slog.Logger
}

func NewClient(client *minio.Client, bucket string, log *slog.Logger) storage.ObjectStore {
	return &Client{
		client: client,
		bucket: bucket,
		log:    log,
	}
}

// PutObject stores one object under key.
func (c *Client) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := c.client.PutObject(ctx, c.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	c.log.Debug("object stored", "bucket", c.bucket, "key", key, "size", len(data))
	return nil
}

// GetObject loads one object by key.
func (c *Client) GetObject(ctx context.Context, key string) ([]byte, error) {
	object, err := c.client.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}

	return data, nil
}

// ListObjects returns all object keys under a prefix.
func (c *Client) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	objectCh := c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects with prefix %s: %w", prefix, object.Err)
		}

		// Skip empty keys and directory markers.
		if len(object.Key) > 0 && object.Key[len(object.Key)-1] != '/' {
			keys = append(keys, object.Key)
		}
	}

	return keys, nil
}

// GetPresignedURL generates a temporary download URL for an object.
func (c *Client) GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = 5 * time.Minute
	}

	url, err := c.client.PresignedGetObject(ctx, c.bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL for %s: %w", key, err)
	}

	return url.String(), nil
}
