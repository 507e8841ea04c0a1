package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/domain"
)

type mockStatsRepository struct {
	mock.Mock
}

func (m *mockStatsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if stats := args.Get(0); stats != nil {
		return stats.(*domain.Statistics), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCacheRepository struct {
	mock.Mock
}

func (m *mockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCacheRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func TestStatsUseCase_GetStatistics(t *testing.T) {
	logger := zap.NewNop()
	sample := &domain.Statistics{
		Services: domain.EntityCount{Total: 5, Active: 4},
		Stops:    domain.EntityCount{Total: 120, Active: 118},
	}

	t.Run("cache hit skips the database", func(t *testing.T) {
		cached, err := json.Marshal(sample)
		require.NoError(t, err)

		statsRepo := new(mockStatsRepository)
		cacheRepo := new(mockCacheRepository)
		cacheRepo.On("Get", mock.Anything, statsCacheKey).Return(cached, nil)

		uc := NewStatsUseCase(statsRepo, cacheRepo, logger, time.Minute, nil)
		stats, err := uc.GetStatistics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5, stats.Services.Total)

		statsRepo.AssertNotCalled(t, "GetStatistics", mock.Anything)
	})

	t.Run("cache miss queries and refills", func(t *testing.T) {
		statsRepo := new(mockStatsRepository)
		statsRepo.On("GetStatistics", mock.Anything).Return(sample, nil).Once()

		cacheRepo := new(mockCacheRepository)
		cacheRepo.On("Get", mock.Anything, statsCacheKey).Return(nil, nil)
		cacheRepo.On("Set", mock.Anything, statsCacheKey, mock.Anything, time.Minute).Return(nil)

		uc := NewStatsUseCase(statsRepo, cacheRepo, logger, time.Minute, nil)
		stats, err := uc.GetStatistics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 120, stats.Stops.Total)

		cacheRepo.AssertExpectations(t)
		statsRepo.AssertExpectations(t)
	})

	t.Run("transient database failure is retried", func(t *testing.T) {
		statsRepo := new(mockStatsRepository)
		statsRepo.On("GetStatistics", mock.Anything).Return(nil, assert.AnError).Twice()
		statsRepo.On("GetStatistics", mock.Anything).Return(sample, nil).Once()

		cacheRepo := new(mockCacheRepository)
		cacheRepo.On("Get", mock.Anything, statsCacheKey).Return(nil, nil)
		cacheRepo.On("Set", mock.Anything, statsCacheKey, mock.Anything, time.Minute).Return(nil)

		uc := NewStatsUseCase(statsRepo, cacheRepo, logger, time.Minute, nil)
		stats, err := uc.GetStatistics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, stats.Services.Active)
		statsRepo.AssertNumberOfCalls(t, "GetStatistics", 3)
	})

	t.Run("persistent failure surfaces after the final attempt", func(t *testing.T) {
		statsRepo := new(mockStatsRepository)
		statsRepo.On("GetStatistics", mock.Anything).Return(nil, assert.AnError)

		cacheRepo := new(mockCacheRepository)
		cacheRepo.On("Get", mock.Anything, statsCacheKey).Return(nil, nil)

		uc := NewStatsUseCase(statsRepo, cacheRepo, logger, time.Minute, nil)
		stats, err := uc.GetStatistics(context.Background())
		assert.Nil(t, stats)
		assert.ErrorIs(t, err, assert.AnError)
		statsRepo.AssertNumberOfCalls(t, "GetStatistics", statsMaxAttempts)
	})

	t.Run("cache read failure degrades to a database read", func(t *testing.T) {
		statsRepo := new(mockStatsRepository)
		statsRepo.On("GetStatistics", mock.Anything).Return(sample, nil).Once()

		cacheRepo := new(mockCacheRepository)
		cacheRepo.On("Get", mock.Anything, statsCacheKey).Return(nil, assert.AnError)
		cacheRepo.On("Set", mock.Anything, statsCacheKey, mock.Anything, time.Minute).Return(nil)

		uc := NewStatsUseCase(statsRepo, cacheRepo, logger, time.Minute, nil)
		stats, err := uc.GetStatistics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5, stats.Services.Total)
	})
}
