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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// priceReportRepository implements the domain.PriceReportRepository interface.
type priceReportRepository struct {
	db *gorm.DB
}

// NewPriceReportRepository is the constructor for priceReportRepository.
func NewPriceReportRepository(db *gorm.DB) repository.PriceReportRepository {
	return &priceReportRepository{db: db}
}

// CountReportsByUser counts every report a user ever made.
func (repo *priceReportRepository) CountReportsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PriceReportModel{}).
		Where("reported_by = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count reports by user")
	}

	return count, nil
}

// FindRecentReportsByUser returns the user's reports since a point in time, newest first.
func (repo *priceReportRepository) FindRecentReportsByUser(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.PriceReport, error) {
	var models []*model.PriceReportModel
	err := repo.db.WithContext(ctx).
		Where("reported_by = ? AND reported_at >= ?", userID, since).
		Order("reported_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent reports by user")
	}

	return toPriceReportDomains(models), nil
}

// CreateReport persists a new report.
func (repo *priceReportRepository) CreateReport(ctx context.Context, report *entity.PriceReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	reportM := fromPriceReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShopNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPrice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create price report")
	}

	report.UpdatedAt = reportM.UpdatedAt

	return nil
}

// FindReportByID retrieves a report.
func (repo *priceReportRepository) FindReportByID(ctx context.Context, id uuid.UUID) (*entity.PriceReport, error) {
	var reportM model.PriceReportModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&reportM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find price report by id")
	}

	return toPriceReportDomain(&reportM), nil
}

// FindReportsByShopAndProduct returns the history of a pair, newest first.
func (repo *priceReportRepository) FindReportsByShopAndProduct(ctx context.Context, shopID uuid.UUID, productID int64) ([]*entity.PriceReport, error) {
	var models []*model.PriceReportModel
	err := repo.db.WithContext(ctx).
		Where("shop_id = ? AND product_id = ?", shopID, productID).
		Order("reported_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reports by shop and product")
	}

	return toPriceReportDomains(models), nil
}

// HasUserReportedOn checks the daily duplicate index.
func (repo *priceReportRepository) HasUserReportedOn(ctx context.Context, productID int64, shopID, userID uuid.UUID, day time.Time) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PriceReportModel{}).
		Where("product_id = ? AND shop_id = ? AND reported_by = ? AND report_date = ?",
			productID, shopID, userID, entity.ReportDay(day)).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check daily report")
	}

	return count > 0, nil
}

// UpdateReportPrice overwrites the price of a report.
func (repo *priceReportRepository) UpdateReportPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PriceReportModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"price":      price,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update price report")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReportNotFound
	}

	return nil
}

// DeleteReport removes a report.
func (repo *priceReportRepository) DeleteReport(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PriceReportModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete price report")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReportNotFound
	}

	return nil
}

type priceSumRow struct {
	Total decimal.Decimal
	Count int64
}

// SumProductPrices aggregates every report of a product across shops.
func (repo *priceReportRepository) SumProductPrices(ctx context.Context, productID int64) (decimal.Decimal, int64, error) {
	var row priceSumRow
	err := repo.db.WithContext(ctx).
		Model(&model.PriceReportModel{}).
		Select("COALESCE(SUM(price), 0) AS total, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, 0, errors.Wrap(err, "failed to sum product prices")
	}

	return row.Total, row.Count, nil
}

func toPriceReportDomain(data *model.PriceReportModel) *entity.PriceReport {
	if data == nil {
		return nil
	}

	return &entity.PriceReport{
		ID:             data.ID,
		ProductID:      data.ProductID,
		ShopID:         data.ShopID,
		ReportedBy:     data.ReportedBy,
		Price:          data.Price,
		GPSAccuracy:    data.GPSAccuracy,
		DistanceMeters: data.DistanceMeters,
		ReportedAt:     data.ReportedAt,
		ReportDate:     data.ReportDate,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toPriceReportDomains(data []*model.PriceReportModel) []*entity.PriceReport {
	out := make([]*entity.PriceReport, 0, len(data))
	for _, m := range data {
		out = append(out, toPriceReportDomain(m))
	}

	return out
}

func fromPriceReportDomain(data *entity.PriceReport) *model.PriceReportModel {
	if data == nil {
		return nil
	}

	reportDate := data.ReportDate
	if reportDate.IsZero() {
		reportDate = entity.ReportDay(data.ReportedAt)
	}

	return &model.PriceReportModel{
		ID:             data.ID,
		ProductID:      data.ProductID,
		ShopID:         data.ShopID,
		ReportedBy:     data.ReportedBy,
		Price:          data.Price,
		GPSAccuracy:    data.GPSAccuracy,
		DistanceMeters: data.DistanceMeters,
		ReportedAt:     data.ReportedAt,
		ReportDate:     reportDate,
		UpdatedAt:      data.UpdatedAt,
	}
}
