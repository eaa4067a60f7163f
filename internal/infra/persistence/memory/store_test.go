package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pricemap/internal/domain/entity"
	"pricemap/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	return NewStore(WithClock(func() time.Time { return fixedNow }))
}

func seedShop(t *testing.T, store *Store, lat, lon float64, active bool) *entity.Shop {
	t.Helper()

	ctx := context.Background()
	creator := uuid.New()
	shop := &entity.Shop{
		Name:       "Shop",
		Latitude:   lat,
		Longitude:  lon,
		Status:     entity.ShopStatusUnverified,
		IsActive:   active,
		Declarants: entity.NewDeclarantSet(creator),
		CreatedBy:  creator,
	}
	factory := store.Factory()
	require.NoError(t, factory.ShopRepo().CreateShop(ctx, shop))
	require.NoError(t, factory.LocationRepo().UpsertLocation(ctx, &entity.ShopLocation{
		ShopID: shop.ID,
		Point:  shop.Point(),
	}))

	return shop
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	shop := seedShop(t, store, 48.85, 2.35, true)
	txManager := NewTransactionManager(store)
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.PriceReportRepo().CreateReport(ctx, &entity.PriceReport{
			ProductID:  1,
			ShopID:     shop.ID,
			ReportedBy: uuid.New(),
			Price:      decimal.NewFromInt(10),
		}))
		require.NoError(t, f.ShopRepo().AddDeclarant(ctx, shop.ID, uuid.New()))

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, count, err := store.Factory().PriceReportRepo().SumProductPrices(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	reloaded, err := store.Factory().ShopRepo().FindShopByID(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Declarants.Len())
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	txManager := NewTransactionManager(store)

	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			require.NoError(t, f.PriceAverageRepo().UpsertAverage(ctx, &entity.PriceAverage{
				ProductID: 7,
				AvgPrice:  decimal.NewFromInt(3),
			}))
			panic("boom")
		})
	})

	_, err := store.Factory().PriceAverageRepo().FindAverageByProduct(ctx, 7)
	assert.ErrorIs(t, err, repository.ErrPriceAverageNotFound)
}

func TestTransactionManager_Commits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	txManager := NewTransactionManager(store)

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.PriceAverageRepo().UpsertAverage(ctx, &entity.PriceAverage{
			ProductID: 7,
			AvgPrice:  decimal.NewFromInt(3),
		})
	})
	require.NoError(t, err)

	average, err := store.Factory().PriceAverageRepo().FindAverageByProduct(ctx, 7)
	require.NoError(t, err)
	assert.True(t, average.AvgPrice.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, fixedNow, average.UpdatedAt)
}

func TestShopRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	shop := seedShop(t, store, 48.85, 2.35, true)

	found, err := store.Factory().ShopRepo().FindShopByID(ctx, shop.ID)
	require.NoError(t, err)
	found.Declarants.Add(uuid.New())
	found.Name = "changed"

	again, err := store.Factory().ShopRepo().FindShopByID(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shop", again.Name)
	assert.Equal(t, 1, again.Declarants.Len())
}

func TestShopRepository_AddDeclarant(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	shop := seedShop(t, store, 48.85, 2.35, true)
	repo := store.Factory().ShopRepo()
	user := uuid.New()

	require.NoError(t, repo.AddDeclarant(ctx, shop.ID, user))
	assert.ErrorIs(t, repo.AddDeclarant(ctx, shop.ID, user), repository.ErrDeclarantExists)
	assert.ErrorIs(t, repo.AddDeclarant(ctx, uuid.New(), user), repository.ErrShopNotFound)

	shops, err := repo.FindShopsByDeclarant(ctx, user)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, []uuid.UUID{shop.CreatedBy, user}, shops[0].Declarants.IDs())
}

func TestLocationRepository_FindShopIDsWithinRadius(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	center := orb.Point{2.35, 48.85}
	near := seedShop(t, store, 48.85018, 2.35, true)   // ~20m
	nearer := seedShop(t, store, 48.85009, 2.35, true) // ~10m
	seedShop(t, store, 48.8509, 2.35, true)            // ~100m
	seedShop(t, store, 48.85005, 2.35, false)          // inactive

	ids, err := store.Factory().LocationRepo().FindShopIDsWithinRadius(ctx, center, 50)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{nearer.ID, near.ID}, ids)
}

func TestShopRepository_FindShopsWithinBound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	inside := seedShop(t, store, 48.85, 2.35, true)
	seedShop(t, store, 40.0, 2.35, true)

	shops, err := store.Factory().ShopRepo().FindShopsWithinBound(ctx, orb.Bound{
		Min: orb.Point{2.3, 48.8},
		Max: orb.Point{2.4, 48.9},
	})
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, inside.ID, shops[0].ID)
}

func TestShopProductRepository_UpsertKeepsIdentity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	shop := seedShop(t, store, 48.85, 2.35, true)
	repo := store.Factory().ShopProductRepo()

	first := &entity.ShopProduct{ShopID: shop.ID, ProductID: 3, Price: decimal.NewFromInt(5), IsAvailable: true}
	require.NoError(t, repo.UpsertShopProduct(ctx, first))

	second := &entity.ShopProduct{ShopID: shop.ID, ProductID: 3, Price: decimal.NewFromInt(6), IsAvailable: true}
	require.NoError(t, repo.UpsertShopProduct(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	found, err := repo.FindShopProduct(ctx, shop.ID, 3)
	require.NoError(t, err)
	assert.True(t, found.Price.Equal(decimal.NewFromInt(6)))

	_, err = repo.FindShopProduct(ctx, shop.ID, 4)
	assert.ErrorIs(t, err, repository.ErrShopProductNotFound)

	err = repo.UpsertShopProduct(ctx, &entity.ShopProduct{ShopID: uuid.New(), ProductID: 3, Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, repository.ErrShopNotFound)
}

func TestShopProductRepository_FindStaleShopProducts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	shop := seedShop(t, store, 48.85, 2.35, true)
	repo := store.Factory().ShopProductRepo()

	for i, age := range []time.Duration{2 * time.Hour, 10 * time.Hour, 30 * time.Minute, 5 * time.Hour} {
		require.NoError(t, repo.UpsertShopProduct(ctx, &entity.ShopProduct{
			ShopID:    shop.ID,
			ProductID: int64(i + 1),
			Price:     decimal.NewFromInt(1),
			PricedAt:  fixedNow.Add(-age),
		}))
	}

	stale, err := repo.FindStaleShopProducts(ctx, fixedNow.Add(-time.Hour), 2)
	require.NoError(t, err)
	require.Len(t, stale, 2)
	assert.Equal(t, int64(2), stale[0].ProductID)
	assert.Equal(t, int64(4), stale[1].ProductID)
}

func TestPriceReportRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	shop := seedShop(t, store, 48.85, 2.35, true)
	repo := store.Factory().PriceReportRepo()
	user := uuid.New()

	older := &entity.PriceReport{ProductID: 1, ShopID: shop.ID, ReportedBy: user, Price: decimal.RequireFromString("10.00"), ReportedAt: fixedNow.Add(-48 * time.Hour)}
	newer := &entity.PriceReport{ProductID: 1, ShopID: shop.ID, ReportedBy: user, Price: decimal.RequireFromString("12.50"), ReportedAt: fixedNow}
	other := &entity.PriceReport{ProductID: 2, ShopID: shop.ID, ReportedBy: uuid.New(), Price: decimal.RequireFromString("3.00"), ReportedAt: fixedNow}
	for _, r := range []*entity.PriceReport{older, newer, other} {
		require.NoError(t, repo.CreateReport(ctx, r))
	}
	assert.Equal(t, entity.ReportDay(fixedNow), newer.ReportDate)

	history, err := repo.FindReportsByShopAndProduct(ctx, shop.ID, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.ID, history[0].ID)

	count, err := repo.CountReportsByUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	recent, err := repo.FindRecentReportsByUser(ctx, user, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, recent, 1)

	reported, err := repo.HasUserReportedOn(ctx, 1, shop.ID, user, fixedNow.Add(-3*time.Hour))
	require.NoError(t, err)
	assert.True(t, reported)
	reported, err = repo.HasUserReportedOn(ctx, 1, shop.ID, user, fixedNow.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.False(t, reported)

	total, n, err := repo.SumProductPrices(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.True(t, total.Equal(decimal.RequireFromString("22.50")))

	require.NoError(t, repo.UpdateReportPrice(ctx, older.ID, decimal.RequireFromString("11")))
	assert.ErrorIs(t, repo.UpdateReportPrice(ctx, uuid.New(), decimal.NewFromInt(1)), repository.ErrReportNotFound)

	require.NoError(t, repo.DeleteReport(ctx, newer.ID))
	assert.ErrorIs(t, repo.DeleteReport(ctx, newer.ID), repository.ErrReportNotFound)

	_, err = repo.FindReportByID(ctx, newer.ID)
	assert.ErrorIs(t, err, repository.ErrReportNotFound)
	found, err := repo.FindReportByID(ctx, older.ID)
	require.NoError(t, err)
	assert.True(t, found.Price.Equal(decimal.NewFromInt(11)))
}

func TestPriceAverageRepository_Ordering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	repo := store.Factory().PriceAverageRepo()

	for id, price := range map[int64]string{1: "5.00", 2: "2.50", 3: "9.99", 4: "2.50"} {
		require.NoError(t, repo.UpsertAverage(ctx, &entity.PriceAverage{
			ProductID: id,
			AvgPrice:  decimal.RequireFromString(price),
		}))
	}

	cheapest, err := repo.FindCheapest(ctx, 3)
	require.NoError(t, err)
	require.Len(t, cheapest, 3)
	assert.Equal(t, []int64{2, 4, 1}, []int64{cheapest[0].ProductID, cheapest[1].ProductID, cheapest[2].ProductID})

	inRange, err := repo.FindAveragesInRange(ctx, decimal.RequireFromString("2.50"), decimal.RequireFromString("5.00"))
	require.NoError(t, err)
	assert.Len(t, inRange, 3)

	require.NoError(t, repo.DeleteAverage(ctx, 2))
	require.NoError(t, repo.DeleteAverage(ctx, 2))
	_, err = repo.FindAverageByProduct(ctx, 2)
	assert.ErrorIs(t, err, repository.ErrPriceAverageNotFound)
}
