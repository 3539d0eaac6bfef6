package ephemeris

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/vbautistacode/etheria/internal/domain"
	"github.com/vbautistacode/etheria/internal/pkg/metrics"
)

const (
	natalEndpoint     = "charts/natal"
	positionsEndpoint = "positions/current"
)

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client talks to the Swiss Ephemeris sidecar over HTTP.
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

func NewClient(cfg *Config, log *slog.Logger) *Client {
	transport := &http.Transport{}

	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		Log: log,
	}
}

func (c *Client) buildURL(endpoint string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + path.Join(c.cfg.ApiVersion, endpoint)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
}

// NatalPositions computes planet longitudes and house cusps for a birth
// moment and place.
func (c *Client) NatalPositions(ctx context.Context, req domain.NatalRequest) (*domain.NatalPositions, error) {
	if req.HouseSystem == "" {
		req.HouseSystem = "P"
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal natal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(natalEndpoint), bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create natal request: %w", err)
	}
	c.setHeaders(httpReq)

	var positions domain.NatalPositions
	if err := c.do(httpReq, natalEndpoint, &positions); err != nil {
		return nil, err
	}
	return &positions, nil
}

// CurrentPositions returns the positions for the current moment.
func (c *Client) CurrentPositions(ctx context.Context) (*domain.NatalPositions, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(positionsEndpoint), nil)
	if err != nil {
		return nil, fmt.Errorf("create positions request: %w", err)
	}
	c.setHeaders(httpReq)

	var positions domain.NatalPositions
	if err := c.do(httpReq, positionsEndpoint, &positions); err != nil {
		return nil, err
	}
	return &positions, nil
}

func (c *Client) do(req *http.Request, endpoint string, dest any) error {
	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	metrics.EphemerisRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("ephemeris request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read ephemeris response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("ephemeris returned non-200 status",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("ephemeris error [status=%d]: %s", resp.StatusCode, truncateString(string(body), 500))
	}

	if err := json.Unmarshal(body, dest); err != nil {
		c.Log.Debug("failed to unmarshal ephemeris response",
			"endpoint", endpoint,
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("ephemeris unmarshal failed: %w", err)
	}
	return nil
}
