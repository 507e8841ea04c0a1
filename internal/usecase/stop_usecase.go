package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/domain"
	"github.com/transit-backoffice/internal/domain/repository"
	"github.com/transit-backoffice/internal/usecase/dto"
)

// StopUseCase handles admin CRUD for bus stops.
type StopUseCase struct {
	stopRepo repository.StopRepository
	hooks    mutationHooks
	logger   *zap.Logger
}

func NewStopUseCase(stopRepo repository.StopRepository, cacheRepo repository.CacheRepository, publisher ChangePublisher, logger *zap.Logger) *StopUseCase {
	return &StopUseCase{
		stopRepo: stopRepo,
		hooks:    mutationHooks{cacheRepo: cacheRepo, publisher: publisher, logger: logger},
		logger:   logger,
	}
}

func (uc *StopUseCase) List(ctx context.Context, q dto.ListQuery) ([]*domain.BusStop, int, error) {
	return uc.stopRepo.List(ctx, q.ToListParams())
}

func (uc *StopUseCase) GetByID(ctx context.Context, id string) (*domain.BusStop, error) {
	return uc.stopRepo.GetByID(ctx, id)
}

func (uc *StopUseCase) Create(ctx context.Context, req dto.CreateStopRequest) (*domain.BusStop, error) {
	now := time.Now().UTC()
	active := boolOrDefault(req.IsActive, true)
	stop := &domain.BusStop{
		ID:              uuid.NewString(),
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Name:            newLocalized(req.Name),
		Description:     newLocalized(req.Description),
		IconID:          req.IconID,
		ZoneID:          req.ZoneID,
		HasShelter:      req.HasShelter,
		HasBench:        req.HasBench,
		HasLighting:     req.HasLighting,
		IsAccessible:    req.IsAccessible,
		HasRealTimeInfo: req.HasRealTimeInfo,
		IsActive:        &active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.stopRepo.Create(ctx, stop); err != nil {
		return nil, err
	}
	if req.LaneIDs != nil {
		if err := uc.stopRepo.SetLanes(ctx, stop.ID, req.LaneIDs); err != nil {
			return nil, err
		}
	}
	uc.hooks.afterMutation(ctx, "stop", stop.ID, "created")
	return stop, nil
}

func (uc *StopUseCase) Update(ctx context.Context, id string, req dto.UpdateStopRequest) (*domain.BusStop, error) {
	stop, err := uc.stopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Latitude != nil {
		stop.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		stop.Longitude = *req.Longitude
	}
	stop.Name = applyLocalized(stop.Name, req.Name)
	stop.Description = applyLocalized(stop.Description, req.Description)
	if req.IconID != nil {
		stop.IconID = req.IconID
	}
	if req.ZoneID != nil {
		stop.ZoneID = req.ZoneID
	}
	if req.HasShelter != nil {
		stop.HasShelter = *req.HasShelter
	}
	if req.HasBench != nil {
		stop.HasBench = *req.HasBench
	}
	if req.HasLighting != nil {
		stop.HasLighting = *req.HasLighting
	}
	if req.IsAccessible != nil {
		stop.IsAccessible = *req.IsAccessible
	}
	if req.HasRealTimeInfo != nil {
		stop.HasRealTimeInfo = *req.HasRealTimeInfo
	}
	if req.IsActive != nil {
		stop.IsActive = req.IsActive
	}
	stop.UpdatedAt = time.Now().UTC()
	if err := uc.stopRepo.Update(ctx, stop); err != nil {
		return nil, err
	}
	if req.LaneIDs != nil {
		if err := uc.stopRepo.SetLanes(ctx, stop.ID, req.LaneIDs); err != nil {
			return nil, err
		}
	}
	uc.hooks.afterMutation(ctx, "stop", stop.ID, "updated")
	return stop, nil
}

func (uc *StopUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.stopRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.hooks.afterMutation(ctx, "stop", id, "deleted")
	return nil
}
