package postgres

import (
	"context"
	"time"

	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/repository"
	"pricemap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shopProductRepository implements the domain.ShopProductRepository interface.
type shopProductRepository struct {
	db *gorm.DB
}

// NewShopProductRepository is the constructor for shopProductRepository.
func NewShopProductRepository(db *gorm.DB) repository.ShopProductRepository {
	return &shopProductRepository{db: db}
}

// FindShopProduct retrieves the displayed price of a pair.
func (repo *shopProductRepository) FindShopProduct(ctx context.Context, shopID uuid.UUID, productID int64) (*entity.ShopProduct, error) {
	var shopProductM model.ShopProductModel
	err := repo.db.WithContext(ctx).
		Where("shop_id = ? AND product_id = ?", shopID, productID).
		Take(&shopProductM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop product")
	}

	return toShopProductDomain(&shopProductM), nil
}

// UpsertShopProduct inserts the pair or overwrites its price on conflict.
func (repo *shopProductRepository) UpsertShopProduct(ctx context.Context, shopProduct *entity.ShopProduct) error {
	if shopProduct.ID == uuid.Nil {
		shopProduct.ID = uuid.New()
	}
	if shopProduct.PricedAt.IsZero() {
		shopProduct.PricedAt = time.Now().UTC()
	}
	shopProductM := fromShopProductDomain(shopProduct)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "is_available", "priced_at", "updated_at"}),
		}).
		Create(shopProductM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShopNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPrice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert shop product")
	}

	shopProduct.UpdatedAt = shopProductM.UpdatedAt
	if shopProduct.CreatedAt.IsZero() {
		shopProduct.CreatedAt = shopProductM.CreatedAt
	}

	return nil
}

// FindShopProductsByShop lists the prices of a shop ordered by product id.
func (repo *shopProductRepository) FindShopProductsByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopProduct, error) {
	var models []*model.ShopProductModel
	err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("product_id ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop products")
	}

	return toShopProductDomains(models), nil
}

// FindShopIDsWithProduct returns which of shopIDs have an available price for productID.
func (repo *shopProductRepository) FindShopIDsWithProduct(ctx context.Context, productID int64, shopIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(shopIDs))
	if len(shopIDs) == 0 {
		return result, nil
	}

	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.ShopProductModel{}).
		Where("product_id = ? AND is_available = ?", productID, true).
		Where("shop_id IN ?", shopIDs).
		Pluck("shop_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shops with product")
	}

	for _, id := range ids {
		result[id] = true
	}

	return result, nil
}

// FindStaleShopProducts returns pairs priced before cutoff, oldest first.
func (repo *shopProductRepository) FindStaleShopProducts(ctx context.Context, cutoff time.Time, limit int) ([]*entity.ShopProduct, error) {
	var models []*model.ShopProductModel
	err := repo.db.WithContext(ctx).
		Where("priced_at < ?", cutoff).
		Order("priced_at ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stale shop products")
	}

	return toShopProductDomains(models), nil
}

func toShopProductDomain(data *model.ShopProductModel) *entity.ShopProduct {
	if data == nil {
		return nil
	}

	return &entity.ShopProduct{
		ID:          data.ID,
		ShopID:      data.ShopID,
		ProductID:   data.ProductID,
		Price:       data.Price,
		IsAvailable: data.IsAvailable,
		PricedAt:    data.PricedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toShopProductDomains(data []*model.ShopProductModel) []*entity.ShopProduct {
	out := make([]*entity.ShopProduct, 0, len(data))
	for _, m := range data {
		out = append(out, toShopProductDomain(m))
	}

	return out
}

func fromShopProductDomain(data *entity.ShopProduct) *model.ShopProductModel {
	if data == nil {
		return nil
	}

	return &model.ShopProductModel{
		ID:          data.ID,
		ShopID:      data.ShopID,
		ProductID:   data.ProductID,
		Price:       data.Price,
		IsAvailable: data.IsAvailable,
		PricedAt:    data.PricedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
