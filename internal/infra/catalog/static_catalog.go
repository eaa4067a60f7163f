package catalog

import (
	"context"

	"pricemap/config"
	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/service"
)

type staticCatalog struct {
	products map[int64]entity.Product
}

// NewStaticCatalog serves a fixed product list, for development and tests.
func NewStaticCatalog(products []config.CatalogProduct) service.ProductCatalog {
	index := make(map[int64]entity.Product, len(products))
	for _, p := range products {
		index[p.ID] = entity.Product{ID: p.ID, Name: p.Name, IsActive: p.Active}
	}

	return &staticCatalog{products: index}
}

func (c *staticCatalog) GetProduct(_ context.Context, productID int64) (*entity.Product, error) {
	product, ok := c.products[productID]
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}

	return &product, nil
}
