package memory

import (
	"context"
	"slices"

	"pricemap/internal/domain/entity"
	"pricemap/internal/domain/geo"
	"pricemap/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type locationRepository struct {
	store *Store
}

func (repo *locationRepository) UpsertLocation(_ context.Context, location *entity.ShopLocation) error {
	return repo.store.write(func(s *state) error {
		if _, ok := s.shops[location.ShopID]; !ok {
			return repository.ErrShopNotFound
		}
		location.UpdatedAt = repo.store.now()
		s.locations[location.ShopID] = cloneValue(location)

		return nil
	})
}

func (repo *locationRepository) FindLocationByShopID(_ context.Context, shopID uuid.UUID) (*entity.ShopLocation, error) {
	var location *entity.ShopLocation
	repo.store.read(func(s *state) {
		location = cloneValue(s.locations[shopID])
	})
	if location == nil {
		return nil, repository.ErrLocationNotFound
	}

	return location, nil
}

// FindShopIDsWithinRadius scans every location, nearest first.
func (repo *locationRepository) FindShopIDsWithinRadius(_ context.Context, center orb.Point, radiusMeters float64) ([]uuid.UUID, error) {
	type hit struct {
		shopID   uuid.UUID
		distance float64
	}

	var hits []hit
	repo.store.read(func(s *state) {
		for shopID, location := range s.locations {
			shop, ok := s.shops[shopID]
			if !ok || !shop.IsActive {
				continue
			}
			if d := geo.PointDistance(center, location.Point); d <= radiusMeters {
				hits = append(hits, hit{shopID: shopID, distance: d})
			}
		}
	})
	slices.SortFunc(hits, func(a, b hit) int {
		switch {
		case a.distance < b.distance:
			return -1
		case a.distance > b.distance:
			return 1
		default:
			return 0
		}
	})

	ids := make([]uuid.UUID, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.shopID)
	}

	return ids, nil
}
