package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"pricemap/internal/domain/entity"
	"pricemap/internal/domain/repository"

	"github.com/google/uuid"
)

type shopProductRepository struct {
	store *Store
}

func (repo *shopProductRepository) FindShopProduct(_ context.Context, shopID uuid.UUID, productID int64) (*entity.ShopProduct, error) {
	var shopProduct *entity.ShopProduct
	repo.store.read(func(s *state) {
		shopProduct = cloneValue(s.shopProducts[shopProductKey{shopID: shopID, productID: productID}])
	})
	if shopProduct == nil {
		return nil, repository.ErrShopProductNotFound
	}

	return shopProduct, nil
}

// UpsertShopProduct keeps the id and creation time of an existing pair.
func (repo *shopProductRepository) UpsertShopProduct(_ context.Context, shopProduct *entity.ShopProduct) error {
	return repo.store.write(func(s *state) error {
		if _, ok := s.shops[shopProduct.ShopID]; !ok {
			return repository.ErrShopNotFound
		}

		now := repo.store.now()
		key := shopProductKey{shopID: shopProduct.ShopID, productID: shopProduct.ProductID}
		if existing, ok := s.shopProducts[key]; ok {
			shopProduct.ID = existing.ID
			shopProduct.CreatedAt = existing.CreatedAt
		} else {
			if shopProduct.ID == uuid.Nil {
				shopProduct.ID = uuid.New()
			}
			shopProduct.CreatedAt = now
		}
		if shopProduct.PricedAt.IsZero() {
			shopProduct.PricedAt = now
		}
		shopProduct.UpdatedAt = now
		s.shopProducts[key] = cloneValue(shopProduct)

		return nil
	})
}

func (repo *shopProductRepository) FindShopProductsByShop(_ context.Context, shopID uuid.UUID) ([]*entity.ShopProduct, error) {
	var shopProducts []*entity.ShopProduct
	repo.store.read(func(s *state) {
		for key, sp := range s.shopProducts {
			if key.shopID == shopID {
				shopProducts = append(shopProducts, cloneValue(sp))
			}
		}
	})
	slices.SortFunc(shopProducts, func(a, b *entity.ShopProduct) int {
		return cmp.Compare(a.ProductID, b.ProductID)
	})

	return shopProducts, nil
}

func (repo *shopProductRepository) FindShopIDsWithProduct(_ context.Context, productID int64, shopIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(shopIDs))
	repo.store.read(func(s *state) {
		for _, shopID := range shopIDs {
			sp, ok := s.shopProducts[shopProductKey{shopID: shopID, productID: productID}]
			if ok && sp.IsAvailable {
				result[shopID] = true
			}
		}
	})

	return result, nil
}

func (repo *shopProductRepository) FindStaleShopProducts(_ context.Context, cutoff time.Time, limit int) ([]*entity.ShopProduct, error) {
	var stale []*entity.ShopProduct
	repo.store.read(func(s *state) {
		for _, sp := range s.shopProducts {
			if sp.PricedAt.Before(cutoff) {
				stale = append(stale, cloneValue(sp))
			}
		}
	})
	slices.SortFunc(stale, func(a, b *entity.ShopProduct) int {
		return a.PricedAt.Compare(b.PricedAt)
	})
	if limit > 0 && len(stale) > limit {
		stale = stale[:limit]
	}

	return stale, nil
}
