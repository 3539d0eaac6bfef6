package ephemeris

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbautistacode/etheria/internal/domain"
)

func TestNatalPositions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/charts/natal", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req domain.NatalRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "P", req.HouseSystem)
		assert.Equal(t, -23.55, req.Latitude)

		json.NewEncoder(w).Encode(domain.NatalPositions{
			JulianDay: 2448027.5,
			Planets:   map[string]domain.EphemerisPlanet{"Sun": {Longitude: 54.2}},
		})
	}))
	defer srv.Close()

	client := NewClient(&Config{BaseURL: srv.URL, ApiVersion: "v1", APIKey: "secret", Timeout: 5 * time.Second}, slog.Default())

	positions, err := client.NatalPositions(context.Background(), domain.NatalRequest{
		Name:      "Ana",
		Datetime:  time.Date(1990, 5, 15, 12, 0, 0, 0, time.UTC),
		Latitude:  -23.55,
		Longitude: -46.63,
	})
	require.NoError(t, err)
	assert.Equal(t, 54.2, positions.Planets["Sun"].Longitude)
}

func TestCurrentPositions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/positions/current", r.URL.Path)
		json.NewEncoder(w).Encode(domain.NatalPositions{JulianDay: 2460000.5})
	}))
	defer srv.Close()

	client := NewClient(&Config{BaseURL: srv.URL, ApiVersion: "v1"}, slog.Default())

	positions, err := client.CurrentPositions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2460000.5, positions.JulianDay)
}

func TestNatalPositionsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(&Config{BaseURL: srv.URL, ApiVersion: "v1"}, slog.Default())

	_, err := client.NatalPositions(context.Background(), domain.NatalRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=400")
}
