package geocoder

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbautistacode/etheria/internal/domain"
)

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache { return &fakeCache{values: map[string]string{}} }

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := c.values[key]; ok {
		return v, nil
	}
	return "", domain.NewBusinessError("key not found")
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.values[key] = value
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

func TestResolve(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "São Paulo", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "etheria-test", r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"display_name":"São Paulo, Brasil","lat":"-23.55","lon":"-46.63"}]`))
	}))
	defer srv.Close()

	cache := newFakeCache()
	client := NewClient(&Config{BaseURL: srv.URL, UserAgent: "etheria-test", CacheTTL: time.Hour}, cache, slog.Default())

	place, err := client.Resolve(context.Background(), "São Paulo")
	require.NoError(t, err)
	assert.Equal(t, -23.55, place.Latitude)
	assert.Equal(t, -46.63, place.Longitude)
	assert.Equal(t, "São Paulo, Brasil", place.DisplayName)

	// Second lookup is served from cache.
	_, err = client.Resolve(context.Background(), "São Paulo")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestResolveNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(&Config{BaseURL: srv.URL, UserAgent: "etheria-test"}, nil, slog.Default())

	_, err := client.Resolve(context.Background(), "Lugar Nenhum")
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
}

func TestResolveEmptyPlace(t *testing.T) {
	client := NewClient(&Config{}, nil, slog.Default())

	_, err := client.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
}
