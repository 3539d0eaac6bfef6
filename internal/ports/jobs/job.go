package jobs

import (
	"context"
	"time"
)

// Job is a unit of scheduled background work.
type Job interface {
	Name() string
	NextRun(now time.Time) time.Time
	Run(ctx context.Context) error
}
