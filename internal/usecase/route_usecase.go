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

// RouteUseCase handles admin CRUD for bus routes, including the
// ordered lane and stop memberships.
type RouteUseCase struct {
	routeRepo repository.RouteRepository
	hooks     mutationHooks
	logger    *zap.Logger
}

func NewRouteUseCase(routeRepo repository.RouteRepository, cacheRepo repository.CacheRepository, publisher ChangePublisher, logger *zap.Logger) *RouteUseCase {
	return &RouteUseCase{
		routeRepo: routeRepo,
		hooks:     mutationHooks{cacheRepo: cacheRepo, publisher: publisher, logger: logger},
		logger:    logger,
	}
}

func (uc *RouteUseCase) List(ctx context.Context, q dto.ListQuery) ([]*domain.BusRoute, int, error) {
	return uc.routeRepo.List(ctx, q.ToListParams())
}

func (uc *RouteUseCase) GetByID(ctx context.Context, id string) (*domain.BusRoute, error) {
	return uc.routeRepo.GetByID(ctx, id)
}

func (uc *RouteUseCase) Create(ctx context.Context, req dto.CreateRouteRequest) (*domain.BusRoute, error) {
	if !domain.IsValidDirection(req.Direction) {
		return nil, errors.ErrInvalidDirection
	}
	now := time.Now().UTC()
	route := &domain.BusRoute{
		ID:          uuid.NewString(),
		Name:        newLocalized(req.Name),
		Description: newLocalized(req.Description),
		RouteNumber: req.RouteNumber,
		Direction:   req.Direction,
		Color:       req.Color,
		IsActive:    boolOrDefault(req.IsActive, true),
		ServiceID:   req.ServiceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.routeRepo.Create(ctx, route); err != nil {
		return nil, err
	}
	if req.LaneIDs != nil {
		if err := uc.routeRepo.SetLanes(ctx, route.ID, req.LaneIDs); err != nil {
			return nil, err
		}
	}
	if req.StopIDs != nil {
		if err := uc.routeRepo.SetStops(ctx, route.ID, req.StopIDs); err != nil {
			return nil, err
		}
	}
	uc.hooks.afterMutation(ctx, "route", route.ID, "created")
	return route, nil
}

func (uc *RouteUseCase) Update(ctx context.Context, id string, req dto.UpdateRouteRequest) (*domain.BusRoute, error) {
	route, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	route.Name = applyLocalized(route.Name, req.Name)
	route.Description = applyLocalized(route.Description, req.Description)
	if req.RouteNumber != nil {
		route.RouteNumber = req.RouteNumber
	}
	if req.Direction != nil {
		if !domain.IsValidDirection(*req.Direction) {
			return nil, errors.ErrInvalidDirection
		}
		route.Direction = *req.Direction
	}
	if req.Color != nil {
		route.Color = req.Color
	}
	if req.IsActive != nil {
		route.IsActive = *req.IsActive
	}
	if req.ServiceID != nil {
		route.ServiceID = req.ServiceID
	}
	route.UpdatedAt = time.Now().UTC()
	if err := uc.routeRepo.Update(ctx, route); err != nil {
		return nil, err
	}
	if req.LaneIDs != nil {
		if err := uc.routeRepo.SetLanes(ctx, route.ID, req.LaneIDs); err != nil {
			return nil, err
		}
	}
	if req.StopIDs != nil {
		if err := uc.routeRepo.SetStops(ctx, route.ID, req.StopIDs); err != nil {
			return nil, err
		}
	}
	uc.hooks.afterMutation(ctx, "route", route.ID, "updated")
	return route, nil
}

func (uc *RouteUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.routeRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.hooks.afterMutation(ctx, "route", id, "deleted")
	return nil
}
