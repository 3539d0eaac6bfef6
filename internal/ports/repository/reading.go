package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/vbautistacode/etheria/internal/domain"
	"github.com/vbautistacode/etheria/internal/ports/persistence"
)

// ReadingRepo stores and retrieves generated readings.
type ReadingRepo interface {
	Create(ctx context.Context, reading *domain.Reading) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reading, error)
	ListByName(ctx context.Context, name string, limit int) ([]domain.Reading, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Reading, error)
	SetNarrative(ctx context.Context, id uuid.UUID, narrative string) error
	SetChartObjectKey(ctx context.Context, id uuid.UUID, key string) error

	BeginTx(ctx context.Context) (persistence.Tx, error)
	WithTransaction(ctx context.Context, fn func(tx persistence.Persistence) error) error
	CreateTx(ctx context.Context, tx persistence.Persistence, reading *domain.Reading) error
}
