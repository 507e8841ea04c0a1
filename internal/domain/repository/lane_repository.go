package repository

import (
	"context"

	"github.com/transit-backoffice/internal/domain"
)

// LaneRepository is the admin CRUD surface for bus lanes.
type LaneRepository interface {
	List(ctx context.Context, params domain.ListParams) ([]*domain.BusLane, int, error)
	GetByID(ctx context.Context, id string) (*domain.BusLane, error)
	Create(ctx context.Context, lane *domain.BusLane) error
	Update(ctx context.Context, lane *domain.BusLane) error
	SoftDelete(ctx context.Context, id string) error
}
