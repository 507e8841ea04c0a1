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

// ZoneUseCase handles admin CRUD for zones.
type ZoneUseCase struct {
	zoneRepo repository.ZoneRepository
	hooks    mutationHooks
	logger   *zap.Logger
}

func NewZoneUseCase(zoneRepo repository.ZoneRepository, cacheRepo repository.CacheRepository, publisher ChangePublisher, logger *zap.Logger) *ZoneUseCase {
	return &ZoneUseCase{
		zoneRepo: zoneRepo,
		hooks:    mutationHooks{cacheRepo: cacheRepo, publisher: publisher, logger: logger},
		logger:   logger,
	}
}

func (uc *ZoneUseCase) List(ctx context.Context, q dto.ListQuery) ([]*domain.Zone, int, error) {
	return uc.zoneRepo.List(ctx, q.ToListParams())
}

func (uc *ZoneUseCase) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	return uc.zoneRepo.GetByID(ctx, id)
}

func (uc *ZoneUseCase) Create(ctx context.Context, req dto.CreateZoneRequest) (*domain.Zone, error) {
	now := time.Now().UTC()
	zone := &domain.Zone{
		ID:        uuid.NewString(),
		Name:      newLocalized(req.Name),
		Color:     req.Color,
		IsActive:  boolOrDefault(req.IsActive, true),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.zoneRepo.Create(ctx, zone); err != nil {
		return nil, err
	}
	uc.hooks.afterMutation(ctx, "zone", zone.ID, "created")
	return zone, nil
}

func (uc *ZoneUseCase) Update(ctx context.Context, id string, req dto.UpdateZoneRequest) (*domain.Zone, error) {
	zone, err := uc.zoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	zone.Name = applyLocalized(zone.Name, req.Name)
	if req.Color != nil {
		zone.Color = req.Color
	}
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}
	zone.UpdatedAt = time.Now().UTC()
	if err := uc.zoneRepo.Update(ctx, zone); err != nil {
		return nil, err
	}
	uc.hooks.afterMutation(ctx, "zone", zone.ID, "updated")
	return zone, nil
}

func (uc *ZoneUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.zoneRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.hooks.afterMutation(ctx, "zone", id, "deleted")
	return nil
}
