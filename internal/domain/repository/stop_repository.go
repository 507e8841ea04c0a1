package repository

import (
	"context"

	"github.com/transit-backoffice/internal/domain"
)

// StopRepository is the admin CRUD surface for bus stops.
type StopRepository interface {
	List(ctx context.Context, params domain.ListParams) ([]*domain.BusStop, int, error)
	GetByID(ctx context.Context, id string) (*domain.BusStop, error)
	Create(ctx context.Context, stop *domain.BusStop) error
	Update(ctx context.Context, stop *domain.BusStop) error
	SoftDelete(ctx context.Context, id string) error
	// SetLanes replaces the stop's lane memberships.
	SetLanes(ctx context.Context, stopID string, laneIDs []string) error
}
