package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/domain"
	"github.com/transit-backoffice/internal/metrics"
	"github.com/transit-backoffice/internal/pkg/errors"
	"github.com/transit-backoffice/internal/usecase/dto"
)

type mockMapRepository struct {
	mock.Mock
}

func (m *mockMapRepository) FetchSnapshot(ctx context.Context) (*domain.MapSnapshot, error) {
	args := m.Called(ctx)
	if snap := args.Get(0); snap != nil {
		return snap.(*domain.MapSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestMapUseCase_GetMapData(t *testing.T) {
	logger := zap.NewNop()

	t.Run("assembles all collections", func(t *testing.T) {
		svc := &domain.TransportService{ID: "svc-1", Type: domain.ServiceTypeBus, Color: "#E53935", IsActive: true}
		lane := &domain.BusLane{
			ID:        "l-1",
			Color:     "#E53935",
			Weight:    4,
			Opacity:   0.8,
			IsActive:  true,
			Path:      json.RawMessage(`[[44.01,36.19],[44.02,36.20]]`),
			ServiceID: strPtr("svc-1"),
			Service:   svc,
		}
		stop := &domain.BusStop{
			ID:        "s-1",
			Latitude:  36.19,
			Longitude: 44.01,
			Lanes:     []*domain.BusLane{lane},
		}
		route := &domain.BusRoute{
			ID:        "r-1",
			Direction: domain.DirectionBidirectional,
			IsActive:  true,
			ServiceID: strPtr("svc-1"),
			Service:   svc,
			Lanes:     []*domain.BusLane{lane},
			Stops:     []*domain.BusStop{stop},
		}
		zone := &domain.Zone{ID: "z-1", IsActive: true}

		repo := new(mockMapRepository)
		repo.On("FetchSnapshot", mock.Anything).Return(&domain.MapSnapshot{
			Services: []*domain.TransportService{svc},
			Stops:    []*domain.BusStop{stop},
			Lanes:    []*domain.BusLane{lane},
			Routes:   []*domain.BusRoute{route},
			Zones:    []*domain.Zone{zone},
		}, nil)

		uc := NewMapUseCase(repo, logger, metrics.NewCollector())
		payload, err := uc.GetMapData(context.Background())
		require.NoError(t, err)
		require.NotNil(t, payload)

		require.Len(t, payload.Services, 1)
		assert.Equal(t, "svc-1", payload.Services[0].ID)

		require.Len(t, payload.Lanes, 1)
		assert.Equal(t, "l-1", payload.Lanes[0].ID)
		assert.Equal(t, []dto.Coordinate{{44.01, 36.19}, {44.02, 36.20}}, payload.Lanes[0].Path)
		require.NotNil(t, payload.Lanes[0].Service)
		assert.Equal(t, "svc-1", payload.Lanes[0].Service.ID)

		require.Len(t, payload.Routes, 1)
		assert.Equal(t, []string{"l-1"}, payload.Routes[0].LaneIDs)
		assert.Equal(t, []string{"s-1"}, payload.Routes[0].StopIDs)

		require.Len(t, payload.Stops, 1)
		assert.Equal(t, []string{"svc-1"}, payload.Stops[0].ServiceIDs)

		require.Len(t, payload.Zones, 1)
		repo.AssertExpectations(t)
	})

	t.Run("nil service rows are dropped from the top-level list", func(t *testing.T) {
		repo := new(mockMapRepository)
		repo.On("FetchSnapshot", mock.Anything).Return(&domain.MapSnapshot{
			Services: []*domain.TransportService{nil, {ID: "svc-2", Type: domain.ServiceTypeBus, IsActive: true}},
		}, nil)

		uc := NewMapUseCase(repo, logger, nil)
		payload, err := uc.GetMapData(context.Background())
		require.NoError(t, err)

		require.Len(t, payload.Services, 1)
		assert.Equal(t, "svc-2", payload.Services[0].ID)
	})

	t.Run("empty snapshot yields empty arrays, not nulls", func(t *testing.T) {
		repo := new(mockMapRepository)
		repo.On("FetchSnapshot", mock.Anything).Return(&domain.MapSnapshot{}, nil)

		uc := NewMapUseCase(repo, logger, nil)
		payload, err := uc.GetMapData(context.Background())
		require.NoError(t, err)

		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{"services":[],"stops":[],"lanes":[],"routes":[],"zones":[]}`, string(raw))
	})

	t.Run("snapshot failure collapses to a single opaque error", func(t *testing.T) {
		repo := new(mockMapRepository)
		repo.On("FetchSnapshot", mock.Anything).Return(nil, assert.AnError)

		uc := NewMapUseCase(repo, logger, metrics.NewCollector())
		payload, err := uc.GetMapData(context.Background())
		assert.Nil(t, payload)
		assert.Equal(t, errors.ErrMapDataUnavailable, err)
	})
}
