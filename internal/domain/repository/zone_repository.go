package repository

import (
	"context"

	"github.com/transit-backoffice/internal/domain"
)

// ZoneRepository is the admin CRUD surface for zones.
type ZoneRepository interface {
	List(ctx context.Context, params domain.ListParams) ([]*domain.Zone, int, error)
	GetByID(ctx context.Context, id string) (*domain.Zone, error)
	Create(ctx context.Context, zone *domain.Zone) error
	Update(ctx context.Context, zone *domain.Zone) error
	SoftDelete(ctx context.Context, id string) error
}
