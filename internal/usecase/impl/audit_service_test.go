package impl

import (
	"context"
	"testing"
	"time"

	"pricemap/internal/domain/entity"
	"pricemap/internal/domain/repository"
	"pricemap/internal/errors"
	mockRepo "pricemap/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuditService(t *testing.T) (*auditService, *mockRepo.MockTransactionManager) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewAuditService(AuditServiceParams{
		TxManager: txManager,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*auditService)

	return service, txManager
}

func TestAuditService_AuditNewShop_LocationError(t *testing.T) {
	service, txManager := createTestAuditService(t)
	ctx := context.Background()
	shop := &entity.Shop{ID: uuid.New(), Latitude: shopLat, Longitude: shopLon, IsActive: true}

	txRepos := mockRepo.NewMockRepositoryFactory(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	txRepos.EXPECT().ShopRepo().Return(shopRepo)
	txRepos.EXPECT().LocationRepo().Return(locationRepo)
	shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	locationRepo.EXPECT().
		FindShopIDsWithinRadius(ctx, shop.Point(), 50.0).
		Return(nil, errors.New("index unavailable"))

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(txRepos)
		})

	result, err := service.AuditNewShop(ctx, shop.ID)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to search nearby shops")
}

func TestAuditService_AuditNewShop_IgnoresVanishedAndInactiveNeighbours(t *testing.T) {
	service, txManager := createTestAuditService(t)
	ctx := context.Background()
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	shop := &entity.Shop{ID: uuid.New(), Status: entity.ShopStatusUnverified, IsActive: true, CreatedAt: created}
	vanished := uuid.New()
	inactive := &entity.Shop{ID: uuid.New(), IsActive: false, CreatedAt: created.Add(-time.Hour)}

	txRepos := mockRepo.NewMockRepositoryFactory(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	txRepos.EXPECT().ShopRepo().Return(shopRepo)
	txRepos.EXPECT().LocationRepo().Return(locationRepo)
	shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	shopRepo.EXPECT().FindShopByID(ctx, vanished).Return(nil, repository.ErrShopNotFound)
	shopRepo.EXPECT().FindShopByID(ctx, inactive.ID).Return(inactive, nil)
	locationRepo.EXPECT().
		FindShopIDsWithinRadius(ctx, shop.Point(), 50.0).
		Return([]uuid.UUID{shop.ID, vanished, inactive.ID}, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(txRepos)
		})

	result, err := service.AuditNewShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.False(t, result.Flagged)
	assert.Empty(t, result.DuplicateOf)
}
