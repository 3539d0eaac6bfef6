package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbautistacode/etheria/internal/domain"
	astroUsecase "github.com/vbautistacode/etheria/internal/usecases/astro"
)

type fastJob struct {
	runs atomic.Int32
}

func (j *fastJob) Name() string { return "fast-job" }

func (j *fastJob) NextRun(now time.Time) time.Time { return now.Add(5 * time.Millisecond) }

func (j *fastJob) Run(context.Context) error {
	j.runs.Add(1)
	return nil
}

func TestSchedulerRunsRegisteredJob(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := NewScheduler(slog.Default())
	job := &fastJob{}
	sched.Register(job)
	require.NoError(t, sched.Start(ctx))

	assert.Eventually(t, func() bool {
		return job.runs.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestSchedulerStartWithoutJobs(t *testing.T) {
	sched := NewScheduler(slog.Default())
	assert.NoError(t, sched.Start(context.Background()))
}

type fakeEphemeris struct{}

func (fakeEphemeris) NatalPositions(context.Context, domain.NatalRequest) (*domain.NatalPositions, error) {
	return fakeEphemeris{}.CurrentPositions(context.Background())
}

func (fakeEphemeris) CurrentPositions(context.Context) (*domain.NatalPositions, error) {
	return &domain.NatalPositions{
		JulianDay: 2460000.5,
		Planets: map[string]domain.EphemerisPlanet{
			"Sun": {Longitude: 123.4},
		},
	}, nil
}

type fakeCache struct {
	key   string
	value string
	ttl   time.Duration
}

func (c *fakeCache) Get(context.Context, string) (string, error) { return c.value, nil }

func (c *fakeCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.key, c.value, c.ttl = key, value, ttl
	return nil
}

func (c *fakeCache) Delete(context.Context, string) error { return nil }

func (c *fakeCache) Exists(context.Context, string) (bool, error) { return c.key != "", nil }

func (c *fakeCache) Close() error { return nil }

func TestPositionsUpdaterNextRun(t *testing.T) {
	job := NewPositionsUpdater(astroUsecase.New(slog.Default()), fakeEphemeris{}, &fakeCache{}, slog.Default())

	loc := time.FixedZone("BRT", -3*3600)
	morning := time.Date(2025, 6, 1, 4, 30, 0, 0, loc)
	next := job.NextRun(morning)
	assert.Equal(t, 5, next.Hour())
	assert.Equal(t, 1, next.Day())

	afternoon := time.Date(2025, 6, 1, 15, 0, 0, 0, loc)
	next = job.NextRun(afternoon)
	assert.Equal(t, 5, next.Hour())
	assert.Equal(t, 2, next.Day())
}

func TestPositionsUpdaterRun(t *testing.T) {
	cache := &fakeCache{}
	job := NewPositionsUpdater(astroUsecase.New(slog.Default()), fakeEphemeris{}, cache, slog.Default())

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, astroUsecase.PositionsCacheKey, cache.key)
	assert.Equal(t, 25*time.Hour, cache.ttl)

	var summary domain.ChartSummary
	require.NoError(t, json.Unmarshal([]byte(cache.value), &summary))
	require.Len(t, summary.Planets, 1)
	assert.Equal(t, "Leo", summary.Planets[0].Sign)
}
