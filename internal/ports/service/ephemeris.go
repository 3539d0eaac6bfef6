package service

import (
	"context"

	"github.com/vbautistacode/etheria/internal/domain"
)

// Ephemeris computes planetary positions via the Swiss Ephemeris sidecar.
type Ephemeris interface {
	NatalPositions(ctx context.Context, req domain.NatalRequest) (*domain.NatalPositions, error)
	CurrentPositions(ctx context.Context) (*domain.NatalPositions, error)
}
