package repository

import (
	"context"

	"github.com/transit-backoffice/internal/domain"
)

// StatsRepository computes the dashboard entity counters.
type StatsRepository interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
