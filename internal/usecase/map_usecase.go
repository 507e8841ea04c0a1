package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/domain/repository"
	"github.com/transit-backoffice/internal/metrics"
	"github.com/transit-backoffice/internal/pkg/errors"
	"github.com/transit-backoffice/internal/usecase/dto"
)

// MapUseCase assembles the public map payload from a single
// transactional snapshot. Any failure collapses to one opaque error so
// clients never see a partially loaded map.
type MapUseCase struct {
	mapRepo repository.MapRepository
	logger  *zap.Logger
	metrics *metrics.Collector
}

func NewMapUseCase(mapRepo repository.MapRepository, logger *zap.Logger, collector *metrics.Collector) *MapUseCase {
	return &MapUseCase{
		mapRepo: mapRepo,
		logger:  logger,
		metrics: collector,
	}
}

// GetMapData fetches the snapshot and projects every collection into
// its public shape. All payload slices are non-nil so empty collections
// serialize as [] rather than null.
func (uc *MapUseCase) GetMapData(ctx context.Context) (*dto.MapDataPayload, error) {
	start := time.Now()
	snap, err := uc.mapRepo.FetchSnapshot(ctx)
	if uc.metrics != nil {
		uc.metrics.ObserveSnapshot(time.Since(start), err)
	}
	if err != nil {
		uc.logger.Error("Failed to fetch map snapshot", zap.Error(err))
		return nil, errors.ErrMapDataUnavailable
	}

	payload := &dto.MapDataPayload{
		Services: make([]dto.MapServiceView, 0, len(snap.Services)),
		Stops:    make([]dto.MapStopView, 0, len(snap.Stops)),
		Lanes:    make([]dto.MapLaneView, 0, len(snap.Lanes)),
		Routes:   make([]dto.MapRouteView, 0, len(snap.Routes)),
		Zones:    make([]dto.MapZoneView, 0, len(snap.Zones)),
	}
	for _, svc := range snap.Services {
		if view := dto.ProjectMapService(svc); view != nil {
			payload.Services = append(payload.Services, *view)
		}
	}
	for _, stop := range snap.Stops {
		payload.Stops = append(payload.Stops, dto.ProjectStop(stop))
	}
	for _, lane := range snap.Lanes {
		payload.Lanes = append(payload.Lanes, dto.ProjectLane(lane))
	}
	for _, route := range snap.Routes {
		payload.Routes = append(payload.Routes, dto.ProjectRoute(route))
	}
	for _, zone := range snap.Zones {
		payload.Zones = append(payload.Zones, dto.ProjectZone(zone))
	}
	return payload, nil
}
