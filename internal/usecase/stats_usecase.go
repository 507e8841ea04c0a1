package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/domain"
	"github.com/transit-backoffice/internal/domain/repository"
	"github.com/transit-backoffice/internal/metrics"
)

// statsCacheKey holds the serialized dashboard counters. Admin writes
// drop it (see mutationHooks), so a stale entry lives at most one TTL.
const statsCacheKey = "stats:dashboard"

const (
	statsMaxAttempts = 3
	statsRetryDelay  = 200 * time.Millisecond
)

// StatsUseCase serves the dashboard counters, cache first.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
	metrics   *metrics.Collector
}

func NewStatsUseCase(statsRepo repository.StatsRepository, cacheRepo repository.CacheRepository, logger *zap.Logger, cacheTTL time.Duration, collector *metrics.Collector) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
		metrics:   collector,
	}
}

// GetStatistics returns the cached counters when present, otherwise
// queries the database with a few short retries and refills the cache.
// Cache failures degrade to a plain database read.
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.Get(ctx, statsCacheKey)
		if err != nil {
			uc.logger.Warn("Statistics cache read failed", zap.Error(err))
		} else if cached != nil {
			var stats domain.Statistics
			uErr := json.Unmarshal(cached, &stats)
			if uErr == nil {
				if uc.metrics != nil {
					uc.metrics.CacheHits.Inc()
				}
				return &stats, nil
			}
			uc.logger.Warn("Dropping unreadable statistics cache entry", zap.Error(uErr))
		}
		if uc.metrics != nil {
			uc.metrics.CacheMisses.Inc()
		}
	}

	var (
		stats *domain.Statistics
		err   error
	)
	for attempt := 1; attempt <= statsMaxAttempts; attempt++ {
		stats, err = uc.statsRepo.GetStatistics(ctx)
		if err == nil {
			break
		}
		if attempt == statsMaxAttempts {
			break
		}
		uc.logger.Warn("Statistics query failed, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(statsRetryDelay):
		}
	}
	if err != nil {
		uc.logger.Error("Statistics query failed", zap.Error(err))
		return nil, err
	}

	if uc.cacheRepo != nil {
		if payload, mErr := json.Marshal(stats); mErr == nil {
			if cErr := uc.cacheRepo.Set(ctx, statsCacheKey, payload, uc.cacheTTL); cErr != nil {
				uc.logger.Warn("Statistics cache write failed", zap.Error(cErr))
			}
		}
	}
	return stats, nil
}
