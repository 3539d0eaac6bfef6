package service

import (
	"context"

	"github.com/vbautistacode/etheria/internal/domain"
)

// Geocoder resolves a free-text place into coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, place string) (*domain.GeoPlace, error)
}
