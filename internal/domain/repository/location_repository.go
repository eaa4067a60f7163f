package repository

import (
	"context"

	"pricemap/internal/domain/entity"
	"pricemap/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrLocationNotFound is returned when a shop has no spatial record yet.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for the spatial shop index.
type LocationRepository interface {
	// UpsertLocation creates or replaces the point of a shop.
	UpsertLocation(ctx context.Context, location *entity.ShopLocation) error

	// FindLocationByShopID retrieves the spatial record of a shop.
	FindLocationByShopID(ctx context.Context, shopID uuid.UUID) (*entity.ShopLocation, error)

	// FindShopIDsWithinRadius returns ids of active shops whose point lies
	// within radiusMeters of center.
	FindShopIDsWithinRadius(ctx context.Context, center orb.Point, radiusMeters float64) ([]uuid.UUID, error)
}
