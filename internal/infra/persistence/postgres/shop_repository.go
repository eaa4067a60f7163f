// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/repository"
	"pricemap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shopRepository implements the domain.ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

func preloadDeclarants(db *gorm.DB) *gorm.DB {
	return db.Order("declared_at ASC, user_id ASC")
}

// CreateShop persists a new shop; GORM inserts the declarant rows in the same statement batch.
func (repo *shopRepository) CreateShop(ctx context.Context, shop *entity.Shop) error {
	if shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "shop already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// FindShopByID retrieves a shop with its declarants.
func (repo *shopRepository) FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).
		Preload("Declarants", preloadDeclarants).
		Where("id = ?", id).
		Take(&shopM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return toShopDomain(&shopM), nil
}

// FindShopsWithinBound returns the shops whose coordinates fall inside bound.
func (repo *shopRepository) FindShopsWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel
	err := repo.db.WithContext(ctx).
		Preload("Declarants", preloadDeclarants).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Find(&shopModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shops within bound")
	}

	return toShopDomains(shopModels), nil
}

// FindShopsByDeclarant returns the shops a user has declared, newest first.
func (repo *shopRepository) FindShopsByDeclarant(ctx context.Context, userID uuid.UUID) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel
	err := repo.db.WithContext(ctx).
		Preload("Declarants", preloadDeclarants).
		Joins("JOIN shop_declarants ON shop_declarants.shop_id = shops.id").
		Where("shop_declarants.user_id = ?", userID).
		Order("shops.created_at DESC").
		Find(&shopModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shops by declarant")
	}

	return toShopDomains(shopModels), nil
}

// AddDeclarant inserts the membership row. A conflicting insert is skipped
// rather than failed so the surrounding transaction stays usable.
func (repo *shopRepository) AddDeclarant(ctx context.Context, shopID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ShopDeclarantModel{
			ShopID:     shopID,
			UserID:     userID,
			DeclaredAt: time.Now().UTC(),
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrShopNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add declarant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeclarantExists
	}

	return nil
}

// UpdateShop persists the moderation fields of a shop.
func (repo *shopRepository) UpdateShop(ctx context.Context, shop *entity.Shop) error {
	now := time.Now().UTC()
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", shop.ID).
		Updates(map[string]any{
			"status":      string(shop.Status),
			"is_active":   shop.IsActive,
			"verified_by": shop.VerifiedBy,
			"verified_at": shop.VerifiedAt,
			"updated_at":  now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}
	shop.UpdatedAt = now

	return nil
}

// LockArea takes a transaction-scoped advisory lock on every grid cell the
// bound touches, in ascending key order so concurrent callers cannot deadlock.
func (repo *shopRepository) LockArea(ctx context.Context, bound orb.Bound) error {
	for _, key := range areaLockKeys(bound) {
		if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", key).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to lock area")
		}
	}

	return nil
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	declarants := make([]uuid.UUID, 0, len(data.Declarants))
	for _, d := range data.Declarants {
		declarants = append(declarants, d.UserID)
	}

	return &entity.Shop{
		ID:           data.ID,
		Name:         data.Name,
		Address:      data.Address,
		City:         data.City,
		Country:      data.Country,
		PostalCode:   data.PostalCode,
		Description:  data.Description,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Status:       entity.ShopStatus(data.Status),
		IsActive:     data.IsActive,
		Rating:       data.Rating,
		TotalReviews: data.TotalReviews,
		Declarants:   entity.NewDeclarantSet(declarants...),
		CreatedBy:    data.CreatedBy,
		VerifiedBy:   data.VerifiedBy,
		VerifiedAt:   data.VerifiedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toShopDomains(data []*model.ShopModel) []*entity.Shop {
	shops := make([]*entity.Shop, 0, len(data))
	for _, m := range data {
		shops = append(shops, toShopDomain(m))
	}

	return shops
}

// fromShopDomain converts a domain Shop to a GORM ShopModel, declarants included.
func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	now := time.Now().UTC()
	declarants := make([]model.ShopDeclarantModel, 0, data.Declarants.Len())
	for i, userID := range data.Declarants.IDs() {
		declarants = append(declarants, model.ShopDeclarantModel{
			ShopID:     data.ID,
			UserID:     userID,
			DeclaredAt: now.Add(time.Duration(i) * time.Microsecond),
		})
	}

	return &model.ShopModel{
		ID:           data.ID,
		Name:         data.Name,
		Address:      data.Address,
		City:         data.City,
		Country:      data.Country,
		PostalCode:   data.PostalCode,
		Description:  data.Description,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Status:       string(data.Status),
		IsActive:     data.IsActive,
		Rating:       data.Rating,
		TotalReviews: data.TotalReviews,
		CreatedBy:    data.CreatedBy,
		VerifiedBy:   data.VerifiedBy,
		VerifiedAt:   data.VerifiedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Declarants:   declarants,
	}
}
