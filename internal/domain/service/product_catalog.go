package service

import (
	"context"

	"pricemap/internal/domain/entity"
)

// ProductCatalog is the read-only lookup of the external product service.
// Implementations return domainerrors.ErrProductNotFound for unknown products
// and domainerrors.ErrCatalogUnavailable when the catalog cannot answer.
type ProductCatalog interface {
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
}
