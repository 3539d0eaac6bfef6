package generator

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbautistacode/etheria/internal/domain"
)

type fakeCache struct {
	values map[string]string
	setTTL time.Duration
}

func newFakeCache() *fakeCache { return &fakeCache{values: map[string]string{}} }

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := c.values[key]; ok {
		return v, nil
	}
	return "", errors.New("key not found")
}

func (c *fakeCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.values[key] = value
	c.setTTL = ttl
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.values, key)
	return nil
}

func (c *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := c.values[key]
	return ok, nil
}

func (c *fakeCache) Close() error { return nil }

func summaryFixture() *domain.ChartSummary {
	return &domain.ChartSummary{
		Ascendant: &domain.ChartPoint{Longitude: 100, Sign: "Cancer", Degree: 10},
		Planets: []domain.PlanetPosition{
			{Planet: "Sun", Sign: "Taurus", Degree: 15.5, House: 11},
			{Planet: "Moon", Sign: "Scorpio", Degree: 24.2, House: 5},
		},
	}
}

func newService(t *testing.T, cache *fakeCache) *Service {
	t.Helper()
	svc, err := New(context.Background(), Config{Model: "gemini-1.5-flash", CacheTTL: 300 * time.Second}, nil, slog.Default())
	require.NoError(t, err)
	if cache != nil {
		svc.cache = cache
	}
	return svc
}

func TestGenerateFallbackWithoutAPIKey(t *testing.T) {
	svc := newService(t, nil)

	text, err := svc.Generate(context.Background(), "Ana", summaryFixture())
	require.NoError(t, err)
	assert.Contains(t, text, "Ana, seu mapa é um palco")
	assert.Contains(t, text, "Ascendente em Cancer")
	assert.Contains(t, text, "Sun em Taurus")
}

func TestGenerateUsesModel(t *testing.T) {
	cache := newFakeCache()
	svc := newService(t, cache)
	svc.generate = func(_ context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "ASCENDENTE: Cancer 10°")
		return "Narrativa gerada.", nil
	}

	text, err := svc.Generate(context.Background(), "Ana", summaryFixture())
	require.NoError(t, err)
	assert.Equal(t, "Narrativa gerada.", text)
	assert.Len(t, cache.values, 1)
	assert.Equal(t, 300*time.Second, cache.setTTL)
}

func TestGenerateCacheHit(t *testing.T) {
	cache := newFakeCache()
	svc := newService(t, cache)
	calls := 0
	svc.generate = func(context.Context, string) (string, error) {
		calls++
		return "Narrativa gerada.", nil
	}

	_, err := svc.Generate(context.Background(), "Ana", summaryFixture())
	require.NoError(t, err)
	cached, err := svc.Generate(context.Background(), "Ana", summaryFixture())
	require.NoError(t, err)

	assert.Equal(t, "Narrativa gerada.", cached)
	assert.Equal(t, 1, calls)
}

func TestGenerateModelErrorFallsBack(t *testing.T) {
	svc := newService(t, nil)
	svc.generate = func(context.Context, string) (string, error) {
		return "", errors.New("quota exceeded")
	}

	text, err := svc.Generate(context.Background(), "Ana", summaryFixture())
	require.NoError(t, err)
	assert.Contains(t, text, "seu mapa é um palco")
}

func TestGenerateEmptyNameDefaults(t *testing.T) {
	svc := newService(t, nil)

	text, err := svc.Generate(context.Background(), "  ", summaryFixture())
	require.NoError(t, err)
	assert.Contains(t, text, "Consulente, seu mapa")
}

func TestGenerateNilSummary(t *testing.T) {
	svc := newService(t, nil)

	_, err := svc.Generate(context.Background(), "Ana", nil)
	var berr *domain.BusinessError
	assert.ErrorAs(t, err, &berr)
}
