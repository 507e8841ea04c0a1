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

// IconUseCase handles admin CRUD for map icons.
type IconUseCase struct {
	iconRepo repository.IconRepository
	hooks    mutationHooks
	logger   *zap.Logger
}

func NewIconUseCase(iconRepo repository.IconRepository, cacheRepo repository.CacheRepository, publisher ChangePublisher, logger *zap.Logger) *IconUseCase {
	return &IconUseCase{
		iconRepo: iconRepo,
		hooks:    mutationHooks{cacheRepo: cacheRepo, publisher: publisher, logger: logger},
		logger:   logger,
	}
}

func (uc *IconUseCase) List(ctx context.Context, q dto.ListQuery) ([]*domain.MapIcon, int, error) {
	return uc.iconRepo.List(ctx, q.ToListParams())
}

func (uc *IconUseCase) GetByID(ctx context.Context, id string) (*domain.MapIcon, error) {
	return uc.iconRepo.GetByID(ctx, id)
}

func (uc *IconUseCase) Create(ctx context.Context, req dto.CreateIconRequest) (*domain.MapIcon, error) {
	now := time.Now().UTC()
	fileID := req.FileID
	icon := &domain.MapIcon{
		ID:           uuid.NewString(),
		IconSize:     req.IconSize,
		IconAnchorX:  req.IconAnchorX,
		IconAnchorY:  req.IconAnchorY,
		PopupAnchorX: req.PopupAnchorX,
		PopupAnchorY: req.PopupAnchorY,
		FileID:       &fileID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.iconRepo.Create(ctx, icon); err != nil {
		return nil, err
	}
	uc.hooks.afterMutation(ctx, "icon", icon.ID, "created")
	return icon, nil
}

func (uc *IconUseCase) Update(ctx context.Context, id string, req dto.UpdateIconRequest) (*domain.MapIcon, error) {
	icon, err := uc.iconRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FileID != nil {
		icon.FileID = req.FileID
	}
	if req.IconSize != nil {
		icon.IconSize = req.IconSize
	}
	if req.IconAnchorX != nil {
		icon.IconAnchorX = req.IconAnchorX
	}
	if req.IconAnchorY != nil {
		icon.IconAnchorY = req.IconAnchorY
	}
	if req.PopupAnchorX != nil {
		icon.PopupAnchorX = req.PopupAnchorX
	}
	if req.PopupAnchorY != nil {
		icon.PopupAnchorY = req.PopupAnchorY
	}
	icon.UpdatedAt = time.Now().UTC()
	if err := uc.iconRepo.Update(ctx, icon); err != nil {
		return nil, err
	}
	uc.hooks.afterMutation(ctx, "icon", icon.ID, "updated")
	return icon, nil
}

func (uc *IconUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.iconRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.hooks.afterMutation(ctx, "icon", id, "deleted")
	return nil
}
