package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vbautistacode/etheria/internal/domain"
	cacheport "github.com/vbautistacode/etheria/internal/ports/cache"
)

// Client resolves free-text places through the Nominatim search API.
// Results are cached; place names rarely move.
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	cache      cacheport.Cache
	Log        *slog.Logger
}

func NewClient(cfg *Config, cache cacheport.Cache, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:        cfg,
		HTTPClient: &http.Client{Timeout: timeout},
		cache:      cache,
		Log:        log,
	}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func cacheKey(place string) string {
	return "geo:" + strings.ToLower(strings.TrimSpace(place))
}

// Resolve looks a place up, serving from cache when possible.
func (c *Client) Resolve(ctx context.Context, place string) (*domain.GeoPlace, error) {
	if strings.TrimSpace(place) == "" {
		return nil, domain.ErrPlaceNotFound
	}

	key := cacheKey(place)
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, key); err == nil && cached != "" {
			var geo domain.GeoPlace
			if err := json.Unmarshal([]byte(cached), &geo); err == nil {
				return &geo, nil
			}
		}
	}

	geo, err := c.search(ctx, place)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if payload, err := json.Marshal(geo); err == nil {
			if err := c.cache.Set(ctx, key, string(payload), c.cfg.CacheTTL); err != nil {
				c.Log.WarnContext(ctx, "cache geocoding result failed", "place", place, "error", err)
			}
		}
	}
	return geo, nil
}

func (c *Client) search(ctx context.Context, place string) (*domain.GeoPlace, error) {
	query := url.Values{}
	query.Set("q", place)
	query.Set("format", "json")
	query.Set("limit", "1")

	endpoint := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/search?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create geocoding request: %w", err)
	}
	// Nominatim rejects requests without an identifying User-Agent.
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read geocoding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder error [status=%d]", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("geocoder unmarshal failed: %w", err)
	}
	if len(results) == 0 {
		return nil, domain.ErrPlaceNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)
	}

	return &domain.GeoPlace{
		DisplayName: results[0].DisplayName,
		Latitude:    lat,
		Longitude:   lon,
	}, nil
}
