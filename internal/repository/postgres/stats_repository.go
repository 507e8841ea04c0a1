package postgres

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/domain"
	"github.com/transit-backoffice/internal/domain/repository"
	"github.com/transit-backoffice/internal/pkg/errors"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: db.logger,
	}
}

// GetStatistics counts active and total rows per collection for the
// admin dashboard. Soft-deleted rows are excluded from both counters.
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		LastUpdated: time.Now().UTC(),
	}

	counts := []struct {
		table string
		dst   *domain.EntityCount
	}{
		{"transport_services", &stats.Services},
		{"bus_stops", &stats.Stops},
		{"bus_lanes", &stats.Lanes},
		{"bus_routes", &stats.Routes},
		{"zones", &stats.Zones},
		{"map_icons", &stats.Icons},
	}

	for _, c := range counts {
		count, err := r.countTable(ctx, c.table)
		if err != nil {
			return nil, err
		}
		*c.dst = count
	}

	return stats, nil
}

func (r *statsRepository) countTable(ctx context.Context, table string) (domain.EntityCount, error) {
	var count domain.EntityCount

	// map_icons has no is_active column; every live row counts as active.
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM ` + table + ` WHERE deleted_at IS NULL`
	if table == "map_icons" {
		query = `SELECT COUNT(*), COUNT(*) FROM ` + table + ` WHERE deleted_at IS NULL`
	}

	if err := r.db.QueryRowContext(ctx, query).Scan(&count.Total, &count.Active); err != nil {
		r.logger.Error("Failed to count table", zap.String("table", table), zap.Error(err))
		return count, errors.ErrDatabaseError
	}
	return count, nil
}
