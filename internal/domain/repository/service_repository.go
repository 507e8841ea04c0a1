package repository

import (
	"context"

	"github.com/transit-backoffice/internal/domain"
)

// ServiceRepository is the admin CRUD surface for transport services.
// List and GetByID exclude soft-deleted rows; Delete is a soft delete.
type ServiceRepository interface {
	List(ctx context.Context, params domain.ListParams) ([]*domain.TransportService, int, error)
	GetByID(ctx context.Context, id string) (*domain.TransportService, error)
	Create(ctx context.Context, svc *domain.TransportService) error
	Update(ctx context.Context, svc *domain.TransportService) error
	SoftDelete(ctx context.Context, id string) error
}
