package impl

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"pricemap/config"
	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/geo"
	"pricemap/internal/domain/repository"
	"pricemap/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// nearbyHit is a shop inside a search radius.
type nearbyHit struct {
	shop     *entity.Shop
	distance float64
}

// resolveInput is the location part of a report.
type resolveInput struct {
	ShopID      *uuid.UUID
	ShopName    string
	Latitude    float64
	Longitude   float64
	GPSAccuracy *float64
	UserID      uuid.UUID
	// SearchRadiusMeters widens the creation check; zero uses the configured radius.
	SearchRadiusMeters float64
}

// resolution is the shop a report is attached to.
type resolution struct {
	Shop           *entity.Shop
	IsNew          bool
	DistanceMeters float64
	Message        string
}

// shopResolver finds the shop a report belongs to, creating it when the
// reporter stands somewhere no shop exists yet.
type shopResolver struct {
	verifier        *geo.Verifier
	creationRadius  float64
	maxSearchRadius float64
	now             func() time.Time
}

func newShopResolver(verifier *geo.Verifier, reporting config.ReportingConfig) *shopResolver {
	return &shopResolver{
		verifier:        verifier,
		creationRadius:  max(reporting.CreationSearchRadiusMeters, verifier.MaxReportDistance()),
		maxSearchRadius: max(reporting.MaxSearchRadiusMeters, verifier.MaxReportDistance()),
		now:             time.Now,
	}
}

// FindNearby returns the active shops within radiusMeters of center, closest first.
func (r *shopResolver) FindNearby(ctx context.Context, shopRepo repository.ShopRepository, center orb.Point, radiusMeters float64) ([]nearbyHit, error) {
	return r.within(ctx, shopRepo, center, radiusMeters, true)
}

// FindNeighbours returns every known shop within radiusMeters of center,
// whatever its status. Creation checks against these so a deactivated shop
// cannot be reactivated on top of a newer one.
func (r *shopResolver) FindNeighbours(ctx context.Context, shopRepo repository.ShopRepository, center orb.Point, radiusMeters float64) ([]nearbyHit, error) {
	return r.within(ctx, shopRepo, center, radiusMeters, false)
}

// CreationRadius is the neighbour check radius for a caller supplied search
// radius. It never drops below the reporting distance nor exceeds the maximum
// search radius.
func (r *shopResolver) CreationRadius(requested float64) float64 {
	if requested <= 0 {
		return r.creationRadius
	}

	return max(min(requested, r.maxSearchRadius), r.verifier.MaxReportDistance())
}

// within answers a bounding box from the store and runs the exact
// great-circle filter here.
func (r *shopResolver) within(ctx context.Context, shopRepo repository.ShopRepository, center orb.Point, radiusMeters float64, activeOnly bool) ([]nearbyHit, error) {
	candidates, err := shopRepo.FindShopsWithinBound(ctx, geo.SearchBound(center, radiusMeters))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shops within bound")
	}

	hits := make([]nearbyHit, 0, len(candidates))
	for _, shop := range candidates {
		if activeOnly && !shop.IsActive {
			continue
		}
		if d := geo.PointDistance(center, shop.Point()); d <= radiusMeters {
			hits = append(hits, nearbyHit{shop: shop, distance: d})
		}
	}
	slices.SortStableFunc(hits, func(a, b nearbyHit) int {
		switch {
		case a.distance < b.distance:
			return -1
		case a.distance > b.distance:
			return 1
		default:
			return 0
		}
	})

	return hits, nil
}

// ResolveOrCreate returns the targeted shop after a proximity check, or creates
// one at the reporter's position when no shop was targeted and none is nearby.
// It must run inside a transaction: creation locks the area first.
func (r *shopResolver) ResolveOrCreate(ctx context.Context, repos repository.RepositoryFactory, input *resolveInput) (*resolution, error) {
	if input.ShopID != nil {
		return r.resolveExisting(ctx, repos.ShopRepo(), input)
	}

	return r.create(ctx, repos, input)
}

func (r *shopResolver) resolveExisting(ctx context.Context, shopRepo repository.ShopRepository, input *resolveInput) (*resolution, error) {
	shop, err := shopRepo.FindShopByID(ctx, *input.ShopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}
	if !shop.IsActive {
		return nil, domainerrors.ErrShopNotFound.WithDetails("shop is not active")
	}

	verification := r.verifier.Verify(input.Latitude, input.Longitude, shop.Latitude, shop.Longitude, input.GPSAccuracy)
	if !verification.Accepted {
		return nil, verification.Err()
	}

	return &resolution{
		Shop:           shop,
		DistanceMeters: verification.DistanceMeters,
		Message:        verification.Message,
	}, nil
}

func (r *shopResolver) create(ctx context.Context, repos repository.RepositoryFactory, input *resolveInput) (*resolution, error) {
	if geo.IsSuspiciousLocation(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrSuspiciousLocation
	}
	// The reporter stands where the shop will be: only coordinate validity
	// and GPS accuracy can fail here.
	self := r.verifier.Verify(input.Latitude, input.Longitude, input.Latitude, input.Longitude, input.GPSAccuracy)
	if !self.Accepted {
		return nil, self.Err()
	}

	center := orb.Point{input.Longitude, input.Latitude}
	radius := r.CreationRadius(input.SearchRadiusMeters)
	shopRepo := repos.ShopRepo()
	if err := shopRepo.LockArea(ctx, geo.SearchBound(center, radius)); err != nil {
		return nil, errors.Wrap(err, "failed to lock area")
	}

	nearby, err := r.FindNeighbours(ctx, shopRepo, center, radius)
	if err != nil {
		return nil, err
	}
	if len(nearby) > 0 {
		return nil, domainerrors.NewShopsNearbyError(len(nearby), nearby[0].distance, radius)
	}

	now := r.now().UTC()
	shop := &entity.Shop{
		ID:         uuid.New(),
		Name:       shopName(input.ShopName, input.Latitude, input.Longitude),
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Status:     entity.ShopStatusUnverified,
		IsActive:   true,
		Declarants: entity.NewDeclarantSet(input.UserID),
		CreatedBy:  input.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := shopRepo.CreateShop(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to create shop")
	}
	if err := repos.LocationRepo().UpsertLocation(ctx, &entity.ShopLocation{
		ShopID:    shop.ID,
		Point:     shop.Point(),
		UpdatedAt: now,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store shop location")
	}

	return &resolution{
		Shop:    shop,
		IsNew:   true,
		Message: self.Message,
	}, nil
}

func shopName(name string, lat, lon float64) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}

	return fmt.Sprintf("Shop at %.4f,%.4f", lat, lon)
}
