package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pricemap/config"
	"pricemap/internal/domain/entity"
	"pricemap/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_MemoryDriver(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	result, err := New(Params{
		Lifecycle: lc,
		Config:    &config.Config{Storage: &config.StorageConfig{Driver: "Memory"}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.NotNil(t, result.TxManager)
	require.NotNil(t, result.Repos)

	ctx := context.Background()
	creator := uuid.New()
	shop := &entity.Shop{Name: "Kiosk", Latitude: 1, Longitude: 1, IsActive: true, CreatedBy: creator}
	err = result.TxManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.ShopRepo().CreateShop(ctx, shop)
	})
	require.NoError(t, err)

	// Writes made in a transaction are visible to the plain repositories.
	stored, err := result.Repos.ShopRepo().FindShopByID(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kiosk", stored.Name)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Storage: &config.StorageConfig{Driver: "sqlite"}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}
