package repository

import (
	"context"

	"github.com/transit-backoffice/internal/domain"
)

// RouteRepository is the admin CRUD surface for bus routes.
type RouteRepository interface {
	List(ctx context.Context, params domain.ListParams) ([]*domain.BusRoute, int, error)
	GetByID(ctx context.Context, id string) (*domain.BusRoute, error)
	Create(ctx context.Context, route *domain.BusRoute) error
	Update(ctx context.Context, route *domain.BusRoute) error
	SoftDelete(ctx context.Context, id string) error
	// SetLanes and SetStops replace the route's ordered memberships.
	SetLanes(ctx context.Context, routeID string, laneIDs []string) error
	SetStops(ctx context.Context, routeID string, stopIDs []string) error
}
