package repository

import (
	"context"
	"time"

	"pricemap/internal/domain/entity"
	"pricemap/internal/errors"

	"github.com/google/uuid"
)

// ErrShopProductNotFound is returned when a shop does not list a product.
var ErrShopProductNotFound = errors.New("shop product not found")

// ShopProductRepository defines the interface for displayed shop prices.
type ShopProductRepository interface {
	// FindShopProduct retrieves the (shop, product) association.
	FindShopProduct(ctx context.Context, shopID uuid.UUID, productID int64) (*entity.ShopProduct, error)

	// UpsertShopProduct creates the association or updates its price and availability.
	UpsertShopProduct(ctx context.Context, shopProduct *entity.ShopProduct) error

	// FindShopProductsByShop lists every product a shop has a price for.
	FindShopProductsByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopProduct, error)

	// FindShopIDsWithProduct returns the subset of shopIDs that list productID.
	FindShopIDsWithProduct(ctx context.Context, productID int64, shopIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	// FindStaleShopProducts returns up to limit associations priced before cutoff, oldest first.
	FindStaleShopProducts(ctx context.Context, cutoff time.Time, limit int) ([]*entity.ShopProduct, error)
}
