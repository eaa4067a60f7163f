package repository

import (
	"context"

	"pricemap/internal/domain/entity"
	"pricemap/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrPriceAverageNotFound is returned when a product has no cached average.
var ErrPriceAverageNotFound = errors.New("price average not found")

// PriceAverageRepository defines the interface for the product-wide price rollup.
type PriceAverageRepository interface {
	// UpsertAverage creates or replaces the average of a product.
	UpsertAverage(ctx context.Context, average *entity.PriceAverage) error

	// DeleteAverage removes the average of a product. Missing rows are not an error.
	DeleteAverage(ctx context.Context, productID int64) error

	// FindAverageByProduct retrieves the average of a product.
	FindAverageByProduct(ctx context.Context, productID int64) (*entity.PriceAverage, error)

	// FindAveragesInRange returns averages with min <= avg <= max, cheapest first.
	FindAveragesInRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]*entity.PriceAverage, error)

	// FindCheapest returns the limit cheapest averages.
	FindCheapest(ctx context.Context, limit int) ([]*entity.PriceAverage, error)
}
