package impl

import (
	"context"
	"time"

	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/repository"
	"pricemap/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// refreshAverage recomputes the product-wide mean over every report of a
// product. A product without reports loses its average.
func refreshAverage(ctx context.Context, repos repository.RepositoryFactory, productID int64, now time.Time) error {
	total, count, err := repos.PriceReportRepo().SumProductPrices(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to sum product prices")
	}

	averageRepo := repos.PriceAverageRepo()
	if count == 0 {
		if err := averageRepo.DeleteAverage(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to delete price average")
		}

		return nil
	}

	if err := averageRepo.UpsertAverage(ctx, &entity.PriceAverage{
		ProductID:   productID,
		AvgPrice:    total.Div(decimal.NewFromInt(count)).Round(2),
		ReportCount: count,
		UpdatedAt:   now,
	}); err != nil {
		return errors.Wrap(err, "failed to upsert price average")
	}

	return nil
}

// repriceShopProduct stores a new displayed price and reports whether it differs
// from the previous one.
func repriceShopProduct(
	ctx context.Context,
	shopProductRepo repository.ShopProductRepository,
	shopID uuid.UUID,
	productID int64,
	price decimal.Decimal,
	now time.Time,
) (bool, error) {
	changed := true
	current, err := shopProductRepo.FindShopProduct(ctx, shopID, productID)
	switch {
	case err == nil:
		changed = !current.Price.Equal(price)
	case !errors.Is(err, repository.ErrShopProductNotFound):
		return false, errors.Wrap(err, "failed to find shop product")
	}

	if err := shopProductRepo.UpsertShopProduct(ctx, &entity.ShopProduct{
		ShopID:      shopID,
		ProductID:   productID,
		Price:       price,
		IsAvailable: true,
		PricedAt:    now,
	}); err != nil {
		return false, errors.Wrap(err, "failed to upsert shop product")
	}

	return changed, nil
}

func findShop(ctx context.Context, shopRepo repository.ShopRepository, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}
