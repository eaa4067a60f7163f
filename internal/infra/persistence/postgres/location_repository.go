package postgres

import (
	"context"
	"time"

	"pricemap/internal/domain/constants"
	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/repository"
	"pricemap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the domain.LocationRepository interface on a PostGIS table.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// UpsertLocation writes the point as EWKB so PostGIS keeps the SRID.
func (repo *locationRepository) UpsertLocation(ctx context.Context, location *entity.ShopLocation) error {
	geom, err := ewkb.Marshal(location.Point, constants.SRIDWGS84)
	if err != nil {
		return errors.Wrap(err, "failed to encode location")
	}

	if location.UpdatedAt.IsZero() {
		location.UpdatedAt = time.Now().UTC()
	}

	err = repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"geom", "updated_at"}),
		}).
		Create(map[string]any{
			"shop_id":    location.ShopID,
			"geom":       gorm.Expr("ST_GeomFromEWKB(?)", geom),
			"updated_at": location.UpdatedAt,
		}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShopNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert location")
	}

	return nil
}

// FindLocationByShopID retrieves the point of a shop.
func (repo *locationRepository) FindLocationByShopID(ctx context.Context, shopID uuid.UUID) (*entity.ShopLocation, error) {
	var row model.LocationRow
	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Select("shop_id, ST_Y(geom) AS latitude, ST_X(geom) AS longitude, updated_at").
		Where("shop_id = ?", shopID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by shop id")
	}

	return &entity.ShopLocation{
		ShopID:    row.ShopID,
		Point:     orb.Point{row.Longitude, row.Latitude},
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// FindShopIDsWithinRadius runs a geography distance query against the GiST index.
func (repo *locationRepository) FindShopIDsWithinRadius(ctx context.Context, center orb.Point, radiusMeters float64) ([]uuid.UUID, error) {
	geom, err := ewkb.Marshal(center, constants.SRIDWGS84)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode search center")
	}

	var ids []uuid.UUID
	err = repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Joins("JOIN shops ON shops.id = locations.shop_id").
		Where("shops.is_active = ?", true).
		Where("ST_DWithin(locations.geom::geography, ST_GeomFromEWKB(?)::geography, ?)", geom, radiusMeters).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "ST_Distance(locations.geom::geography, ST_GeomFromEWKB(?)::geography)",
			Vars:               []any{geom},
			WithoutParentheses: true,
		}}).
		Pluck("locations.shop_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shops within radius")
	}

	return ids, nil
}
