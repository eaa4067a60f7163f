package memory

import (
	"cmp"
	"context"
	"slices"

	"pricemap/internal/domain/entity"
	"pricemap/internal/domain/repository"

	"github.com/shopspring/decimal"
)

type priceAverageRepository struct {
	store *Store
}

func (repo *priceAverageRepository) UpsertAverage(_ context.Context, average *entity.PriceAverage) error {
	return repo.store.write(func(s *state) error {
		if average.UpdatedAt.IsZero() {
			average.UpdatedAt = repo.store.now()
		}
		s.averages[average.ProductID] = cloneValue(average)

		return nil
	})
}

func (repo *priceAverageRepository) DeleteAverage(_ context.Context, productID int64) error {
	return repo.store.write(func(s *state) error {
		delete(s.averages, productID)

		return nil
	})
}

func (repo *priceAverageRepository) FindAverageByProduct(_ context.Context, productID int64) (*entity.PriceAverage, error) {
	var average *entity.PriceAverage
	repo.store.read(func(s *state) {
		average = cloneValue(s.averages[productID])
	})
	if average == nil {
		return nil, repository.ErrPriceAverageNotFound
	}

	return average, nil
}

func (repo *priceAverageRepository) FindAveragesInRange(_ context.Context, minPrice, maxPrice decimal.Decimal) ([]*entity.PriceAverage, error) {
	averages := repo.sorted(func(a *entity.PriceAverage) bool {
		return a.AvgPrice.GreaterThanOrEqual(minPrice) && a.AvgPrice.LessThanOrEqual(maxPrice)
	})

	return averages, nil
}

func (repo *priceAverageRepository) FindCheapest(_ context.Context, limit int) ([]*entity.PriceAverage, error) {
	averages := repo.sorted(func(*entity.PriceAverage) bool { return true })
	if limit > 0 && len(averages) > limit {
		averages = averages[:limit]
	}

	return averages, nil
}

// sorted returns matching averages cheapest first, ties by product id.
func (repo *priceAverageRepository) sorted(keep func(*entity.PriceAverage) bool) []*entity.PriceAverage {
	var averages []*entity.PriceAverage
	repo.store.read(func(s *state) {
		for _, a := range s.averages {
			if keep(a) {
				averages = append(averages, cloneValue(a))
			}
		}
	})
	slices.SortFunc(averages, func(a, b *entity.PriceAverage) int {
		if c := a.AvgPrice.Cmp(b.AvgPrice); c != 0 {
			return c
		}

		return cmp.Compare(a.ProductID, b.ProductID)
	})

	return averages
}
