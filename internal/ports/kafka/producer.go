package kafka

import "context"

// Producer publishes domain events to a single topic.
type Producer interface {
	Send(ctx context.Context, key string, value []byte) error
	Close() error
}
