package memory

import (
	"context"
	"slices"

	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/repository"
	"pricemap/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

var errShopExists = errors.New("duplicate shop id")

type shopRepository struct {
	store *Store
}

func (repo *shopRepository) CreateShop(_ context.Context, shop *entity.Shop) error {
	if shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}

	return repo.store.write(func(s *state) error {
		if _, ok := s.shops[shop.ID]; ok {
			return domainerrors.NewDatabaseExecuteError(errShopExists, "shop already exists")
		}
		now := repo.store.now()
		if shop.CreatedAt.IsZero() {
			shop.CreatedAt = now
		}
		shop.UpdatedAt = now
		s.shops[shop.ID] = cloneShop(shop)

		return nil
	})
}

func (repo *shopRepository) FindShopByID(_ context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shop *entity.Shop
	repo.store.read(func(s *state) {
		shop = cloneShop(s.shops[id])
	})
	if shop == nil {
		return nil, repository.ErrShopNotFound
	}

	return shop, nil
}

func (repo *shopRepository) FindShopsWithinBound(_ context.Context, bound orb.Bound) ([]*entity.Shop, error) {
	var shops []*entity.Shop
	repo.store.read(func(s *state) {
		for _, shop := range s.shops {
			if bound.Contains(shop.Point()) {
				shops = append(shops, cloneShop(shop))
			}
		}
	})
	slices.SortFunc(shops, func(a, b *entity.Shop) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return shops, nil
}

func (repo *shopRepository) FindShopsByDeclarant(_ context.Context, userID uuid.UUID) ([]*entity.Shop, error) {
	var shops []*entity.Shop
	repo.store.read(func(s *state) {
		for _, shop := range s.shops {
			if shop.Declarants.Contains(userID) {
				shops = append(shops, cloneShop(shop))
			}
		}
	})
	slices.SortFunc(shops, func(a, b *entity.Shop) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return shops, nil
}

func (repo *shopRepository) AddDeclarant(_ context.Context, shopID, userID uuid.UUID) error {
	return repo.store.write(func(s *state) error {
		shop, ok := s.shops[shopID]
		if !ok {
			return repository.ErrShopNotFound
		}
		updated := cloneShop(shop)
		if !updated.Declarants.Add(userID) {
			return repository.ErrDeclarantExists
		}
		s.shops[shopID] = updated

		return nil
	})
}

func (repo *shopRepository) UpdateShop(_ context.Context, shop *entity.Shop) error {
	return repo.store.write(func(s *state) error {
		current, ok := s.shops[shop.ID]
		if !ok {
			return repository.ErrShopNotFound
		}
		updated := cloneShop(current)
		updated.Status = shop.Status
		updated.IsActive = shop.IsActive
		updated.VerifiedBy = cloneValue(shop.VerifiedBy)
		updated.VerifiedAt = cloneValue(shop.VerifiedAt)
		updated.UpdatedAt = repo.store.now()
		s.shops[shop.ID] = updated
		shop.UpdatedAt = updated.UpdatedAt

		return nil
	})
}

// LockArea is a no-op: transactions are already serialised.
func (repo *shopRepository) LockArea(context.Context, orb.Bound) error {
	return nil
}
