package service

import (
	"context"

	"github.com/vbautistacode/etheria/internal/domain"
)

// NarrativeGenerator turns a chart summary into interpretive prose.
type NarrativeGenerator interface {
	Generate(ctx context.Context, name string, summary *domain.ChartSummary) (string, error)
}
