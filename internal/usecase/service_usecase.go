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

// ServiceUseCase handles admin CRUD for transport services.
type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
	hooks       mutationHooks
	logger      *zap.Logger
}

func NewServiceUseCase(serviceRepo repository.ServiceRepository, cacheRepo repository.CacheRepository, publisher ChangePublisher, logger *zap.Logger) *ServiceUseCase {
	return &ServiceUseCase{
		serviceRepo: serviceRepo,
		hooks:       mutationHooks{cacheRepo: cacheRepo, publisher: publisher, logger: logger},
		logger:      logger,
	}
}

func (uc *ServiceUseCase) List(ctx context.Context, q dto.ListQuery) ([]*domain.TransportService, int, error) {
	return uc.serviceRepo.List(ctx, q.ToListParams())
}

func (uc *ServiceUseCase) GetByID(ctx context.Context, id string) (*domain.TransportService, error) {
	return uc.serviceRepo.GetByID(ctx, id)
}

func (uc *ServiceUseCase) Create(ctx context.Context, req dto.CreateServiceRequest) (*domain.TransportService, error) {
	if !domain.IsValidServiceType(req.Type) {
		return nil, errors.ErrInvalidServiceType
	}
	now := time.Now().UTC()
	svc := &domain.TransportService{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Color:       req.Color,
		IsActive:    boolOrDefault(req.IsActive, true),
		Name:        newLocalized(req.Name),
		Description: newLocalized(req.Description),
		IconID:      req.IconID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	uc.hooks.afterMutation(ctx, "service", svc.ID, "created")
	return svc, nil
}

func (uc *ServiceUseCase) Update(ctx context.Context, id string, req dto.UpdateServiceRequest) (*domain.TransportService, error) {
	svc, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Type != nil {
		if !domain.IsValidServiceType(*req.Type) {
			return nil, errors.ErrInvalidServiceType
		}
		svc.Type = *req.Type
	}
	if req.Color != nil {
		svc.Color = *req.Color
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	svc.Name = applyLocalized(svc.Name, req.Name)
	svc.Description = applyLocalized(svc.Description, req.Description)
	if req.IconID != nil {
		svc.IconID = req.IconID
	}
	svc.UpdatedAt = time.Now().UTC()
	if err := uc.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	uc.hooks.afterMutation(ctx, "service", svc.ID, "updated")
	return svc, nil
}

func (uc *ServiceUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.serviceRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.hooks.afterMutation(ctx, "service", id, "deleted")
	return nil
}
