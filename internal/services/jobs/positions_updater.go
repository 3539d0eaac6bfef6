package jobs

import (
	"context"
	"log/slog"
	"time"

	cacheport "github.com/vbautistacode/etheria/internal/ports/cache"
	"github.com/vbautistacode/etheria/internal/ports/service"
	astroUsecase "github.com/vbautistacode/etheria/internal/usecases/astro"
)

const positionsUpdaterName = "positions-updater"

// PositionsUpdater refreshes the cached current planet positions every day
// at 05:00 local time.
type PositionsUpdater struct {
	astro     *astroUsecase.Service
	ephemeris service.Ephemeris
	cache     cacheport.Cache
	log       *slog.Logger
	location  *time.Location
}

func NewPositionsUpdater(astro *astroUsecase.Service, eph service.Ephemeris, cache cacheport.Cache, log *slog.Logger) *PositionsUpdater {
	location, _ := time.LoadLocation("America/Sao_Paulo")
	if location == nil {
		location = time.UTC
	}

	return &PositionsUpdater{
		astro:     astro,
		ephemeris: eph,
		cache:     cache,
		log:       log,
		location:  location,
	}
}

func (j *PositionsUpdater) Name() string {
	return positionsUpdaterName
}

// NextRun returns the next 05:00 after now.
func (j *PositionsUpdater) NextRun(now time.Time) time.Time {
	local := now.In(j.location)

	next := time.Date(local.Year(), local.Month(), local.Day(), 5, 0, 0, 0, j.location)
	if next.Before(local) || next.Equal(local) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

func (j *PositionsUpdater) Run(ctx context.Context) error {
	return j.astro.UpdateCachedPositions(ctx, j.ephemeris, j.cache)
}
