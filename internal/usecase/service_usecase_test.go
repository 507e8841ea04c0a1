package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/domain"
	"github.com/transit-backoffice/internal/pkg/errors"
	"github.com/transit-backoffice/internal/usecase/dto"
)

type mockServiceRepository struct {
	mock.Mock
}

func (m *mockServiceRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.TransportService, int, error) {
	args := m.Called(ctx, params)
	var services []*domain.TransportService
	if v := args.Get(0); v != nil {
		services = v.([]*domain.TransportService)
	}
	return services, args.Int(1), args.Error(2)
}

func (m *mockServiceRepository) GetByID(ctx context.Context, id string) (*domain.TransportService, error) {
	args := m.Called(ctx, id)
	if svc := args.Get(0); svc != nil {
		return svc.(*domain.TransportService), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepository) Create(ctx context.Context, svc *domain.TransportService) error {
	return m.Called(ctx, svc).Error(0)
}

func (m *mockServiceRepository) Update(ctx context.Context, svc *domain.TransportService) error {
	return m.Called(ctx, svc).Error(0)
}

func (m *mockServiceRepository) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockChangePublisher struct {
	mock.Mock
}

func (m *mockChangePublisher) PublishChange(entity, id, action string) error {
	return m.Called(entity, id, action).Error(0)
}

func TestServiceUseCase_Create(t *testing.T) {
	logger := zap.NewNop()

	t.Run("mints id, defaults active and fires hooks", func(t *testing.T) {
		repo := new(mockServiceRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.TransportService")).Return(nil)

		cacheRepo := new(mockCacheRepository)
		cacheRepo.On("Delete", mock.Anything, statsCacheKey).Return(nil)

		pub := new(mockChangePublisher)
		pub.On("PublishChange", "service", mock.AnythingOfType("string"), "created").Return(nil)

		uc := NewServiceUseCase(repo, cacheRepo, pub, logger)
		svc, err := uc.Create(context.Background(), dto.CreateServiceRequest{
			Type:  domain.ServiceTypeBus,
			Color: "#E53935",
			Name:  &dto.LocalizedTextInput{En: strPtr("City buses")},
		})
		require.NoError(t, err)

		_, err = uuid.Parse(svc.ID)
		assert.NoError(t, err)
		assert.True(t, svc.IsActive)
		require.NotNil(t, svc.Name)
		assert.Equal(t, "City buses", *svc.Name.En)
		assert.Nil(t, svc.Description)

		repo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("rejects unknown service type before touching the repo", func(t *testing.T) {
		repo := new(mockServiceRepository)
		uc := NewServiceUseCase(repo, nil, nil, logger)

		_, err := uc.Create(context.Background(), dto.CreateServiceRequest{
			Type:  "GONDOLA",
			Color: "#E53935",
		})
		assert.Equal(t, errors.ErrInvalidServiceType, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("hook failures never fail the write", func(t *testing.T) {
		repo := new(mockServiceRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		cacheRepo := new(mockCacheRepository)
		cacheRepo.On("Delete", mock.Anything, statsCacheKey).Return(assert.AnError)

		pub := new(mockChangePublisher)
		pub.On("PublishChange", "service", mock.Anything, "created").Return(assert.AnError)

		uc := NewServiceUseCase(repo, cacheRepo, pub, logger)
		_, err := uc.Create(context.Background(), dto.CreateServiceRequest{
			Type:  domain.ServiceTypeMetro,
			Color: "#3949AB",
		})
		assert.NoError(t, err)
	})
}

func TestServiceUseCase_Update(t *testing.T) {
	logger := zap.NewNop()

	t.Run("applies only the provided fields", func(t *testing.T) {
		existing := &domain.TransportService{
			ID:       "svc-1",
			Type:     domain.ServiceTypeBus,
			Color:    "#E53935",
			IsActive: true,
			Name:     &domain.LocalizedText{ID: "lt-1", En: strPtr("Old name")},
		}

		repo := new(mockServiceRepository)
		repo.On("GetByID", mock.Anything, "svc-1").Return(existing, nil)
		repo.On("Update", mock.Anything, existing).Return(nil)

		uc := NewServiceUseCase(repo, nil, nil, logger)
		newColor := "#00897B"
		svc, err := uc.Update(context.Background(), "svc-1", dto.UpdateServiceRequest{
			Color: &newColor,
			Name:  &dto.LocalizedTextInput{En: strPtr("New name")},
		})
		require.NoError(t, err)

		assert.Equal(t, "#00897B", svc.Color)
		assert.Equal(t, domain.ServiceTypeBus, svc.Type)
		// The localized record keeps its id, only slots change.
		assert.Equal(t, "lt-1", svc.Name.ID)
		assert.Equal(t, "New name", *svc.Name.En)
		repo.AssertExpectations(t)
	})

	t.Run("missing record surfaces not found", func(t *testing.T) {
		repo := new(mockServiceRepository)
		repo.On("GetByID", mock.Anything, "missing").Return(nil, errors.ErrNotFound)

		uc := NewServiceUseCase(repo, nil, nil, logger)
		_, err := uc.Update(context.Background(), "missing", dto.UpdateServiceRequest{})
		assert.Equal(t, errors.ErrNotFound, err)
	})
}

func TestServiceUseCase_Delete(t *testing.T) {
	repo := new(mockServiceRepository)
	repo.On("SoftDelete", mock.Anything, "svc-1").Return(nil)

	pub := new(mockChangePublisher)
	pub.On("PublishChange", "service", "svc-1", "deleted").Return(nil)

	uc := NewServiceUseCase(repo, nil, pub, zap.NewNop())
	require.NoError(t, uc.Delete(context.Background(), "svc-1"))
	pub.AssertExpectations(t)
}
