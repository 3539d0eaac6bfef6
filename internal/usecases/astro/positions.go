package astro

import (
	"context"
	"encoding/json"
	"time"

	cacheport "github.com/vbautistacode/etheria/internal/ports/cache"
	"github.com/vbautistacode/etheria/internal/ports/service"
)

const (
	// PositionsCacheKey holds the latest current-sky snapshot.
	PositionsCacheKey = "astro:positions:current"

	// positionsTTL exceeds the daily refresh so a missed run keeps serving
	// yesterday's snapshot.
	positionsTTL = 25 * time.Hour
)

// UpdateCachedPositions fetches the current planetary positions and stores
// the structured summary in the cache.
func (s *Service) UpdateCachedPositions(ctx context.Context, eph service.Ephemeris, cache cacheport.Cache) error {
	if cache == nil {
		s.log.WarnContext(ctx, "positions cache unavailable, skipping refresh")
		return nil
	}

	natal, err := eph.CurrentPositions(ctx)
	if err != nil {
		return err
	}

	summary := BuildChartSummary(natal)
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	if err := cache.Set(ctx, PositionsCacheKey, string(payload), positionsTTL); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "current positions cached", "planets", len(summary.Planets))
	return nil
}
