package postgres

import (
	"context"

	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/repository"
	"pricemap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// priceAverageRepository implements the domain.PriceAverageRepository interface.
type priceAverageRepository struct {
	db *gorm.DB
}

// NewPriceAverageRepository is the constructor for priceAverageRepository.
func NewPriceAverageRepository(db *gorm.DB) repository.PriceAverageRepository {
	return &priceAverageRepository{db: db}
}

// UpsertAverage replaces the rollup of a product.
func (repo *priceAverageRepository) UpsertAverage(ctx context.Context, average *entity.PriceAverage) error {
	averageM := &model.PriceAverageModel{
		ProductID:   average.ProductID,
		AvgPrice:    average.AvgPrice,
		ReportCount: average.ReportCount,
		UpdatedAt:   average.UpdatedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"avg_price", "report_count", "updated_at"}),
		}).
		Create(averageM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert price average")
	}
	average.UpdatedAt = averageM.UpdatedAt

	return nil
}

// DeleteAverage removes the rollup of a product.
func (repo *priceAverageRepository) DeleteAverage(ctx context.Context, productID int64) error {
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.PriceAverageModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete price average")
	}

	return nil
}

// FindAverageByProduct retrieves the rollup of a product.
func (repo *priceAverageRepository) FindAverageByProduct(ctx context.Context, productID int64) (*entity.PriceAverage, error) {
	var averageM model.PriceAverageModel
	if err := repo.db.WithContext(ctx).Where("product_id = ?", productID).Take(&averageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPriceAverageNotFound
		}

		return nil, errors.Wrap(err, "failed to find price average")
	}

	return toPriceAverageDomain(&averageM), nil
}

// FindAveragesInRange returns the averages between minPrice and maxPrice, cheapest first.
func (repo *priceAverageRepository) FindAveragesInRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]*entity.PriceAverage, error) {
	var models []*model.PriceAverageModel
	err := repo.db.WithContext(ctx).
		Where("avg_price BETWEEN ? AND ?", minPrice, maxPrice).
		Order("avg_price ASC, product_id ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find price averages in range")
	}

	return toPriceAverageDomains(models), nil
}

// FindCheapest returns the cheapest averages.
func (repo *priceAverageRepository) FindCheapest(ctx context.Context, limit int) ([]*entity.PriceAverage, error) {
	var models []*model.PriceAverageModel
	err := repo.db.WithContext(ctx).
		Order("avg_price ASC, product_id ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cheapest price averages")
	}

	return toPriceAverageDomains(models), nil
}

func toPriceAverageDomain(data *model.PriceAverageModel) *entity.PriceAverage {
	if data == nil {
		return nil
	}

	return &entity.PriceAverage{
		ProductID:   data.ProductID,
		AvgPrice:    data.AvgPrice,
		ReportCount: data.ReportCount,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toPriceAverageDomains(data []*model.PriceAverageModel) []*entity.PriceAverage {
	out := make([]*entity.PriceAverage, 0, len(data))
	for _, m := range data {
		out = append(out, toPriceAverageDomain(m))
	}

	return out
}
