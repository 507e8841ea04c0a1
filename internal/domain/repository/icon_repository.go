package repository

import (
	"context"

	"github.com/transit-backoffice/internal/domain"
)

// IconRepository is the admin CRUD surface for map icons.
type IconRepository interface {
	List(ctx context.Context, params domain.ListParams) ([]*domain.MapIcon, int, error)
	GetByID(ctx context.Context, id string) (*domain.MapIcon, error)
	Create(ctx context.Context, icon *domain.MapIcon) error
	Update(ctx context.Context, icon *domain.MapIcon) error
	SoftDelete(ctx context.Context, id string) error
}
