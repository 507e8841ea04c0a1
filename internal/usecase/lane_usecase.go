package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/domain"
	"github.com/transit-backoffice/internal/domain/repository"
	"github.com/transit-backoffice/internal/pkg/errors"
	"github.com/transit-backoffice/internal/usecase/dto"
)

// LaneUseCase handles admin CRUD for bus lanes.
type LaneUseCase struct {
	laneRepo repository.LaneRepository
	hooks    mutationHooks
	logger   *zap.Logger
}

func NewLaneUseCase(laneRepo repository.LaneRepository, cacheRepo repository.CacheRepository, publisher ChangePublisher, logger *zap.Logger) *LaneUseCase {
	return &LaneUseCase{
		laneRepo: laneRepo,
		hooks:    mutationHooks{cacheRepo: cacheRepo, publisher: publisher, logger: logger},
		logger:   logger,
	}
}

func (uc *LaneUseCase) List(ctx context.Context, q dto.ListQuery) ([]*domain.BusLane, int, error) {
	return uc.laneRepo.List(ctx, q.ToListParams())
}

func (uc *LaneUseCase) GetByID(ctx context.Context, id string) (*domain.BusLane, error) {
	return uc.laneRepo.GetByID(ctx, id)
}

// validatePath requires at least two well-formed points, since a
// shorter polyline cannot be drawn. Stored geometry is still decoded
// leniently on the way out; this only gates new admin input.
func validatePath(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	if len(dto.DecodePath(raw)) < 2 {
		return errors.ErrInvalidCoordinates
	}
	return nil
}

func (uc *LaneUseCase) Create(ctx context.Context, req dto.CreateLaneRequest) (*domain.BusLane, error) {
	if err := validatePath(req.Path); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	lane := &domain.BusLane{
		ID:          uuid.NewString(),
		Name:        newLocalized(req.Name),
		Description: newLocalized(req.Description),
		Color:       req.Color,
		Weight:      req.Weight,
		Opacity:     req.Opacity,
		IsActive:    boolOrDefault(req.IsActive, true),
		Path:        req.Path,
		ServiceID:   req.ServiceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.laneRepo.Create(ctx, lane); err != nil {
		return nil, err
	}
	uc.hooks.afterMutation(ctx, "lane", lane.ID, "created")
	return lane, nil
}

func (uc *LaneUseCase) Update(ctx context.Context, id string, req dto.UpdateLaneRequest) (*domain.BusLane, error) {
	lane, err := uc.laneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lane.Name = applyLocalized(lane.Name, req.Name)
	lane.Description = applyLocalized(lane.Description, req.Description)
	if req.Color != nil {
		lane.Color = *req.Color
	}
	if req.Weight != nil {
		lane.Weight = *req.Weight
	}
	if req.Opacity != nil {
		lane.Opacity = *req.Opacity
	}
	if req.IsActive != nil {
		lane.IsActive = *req.IsActive
	}
	if len(req.Path) > 0 {
		if err := validatePath(req.Path); err != nil {
			return nil, err
		}
		lane.Path = req.Path
	}
	if req.ServiceID != nil {
		lane.ServiceID = req.ServiceID
	}
	lane.UpdatedAt = time.Now().UTC()
	if err := uc.laneRepo.Update(ctx, lane); err != nil {
		return nil, err
	}
	uc.hooks.afterMutation(ctx, "lane", lane.ID, "updated")
	return lane, nil
}

func (uc *LaneUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.laneRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.hooks.afterMutation(ctx, "lane", id, "deleted")
	return nil
}
