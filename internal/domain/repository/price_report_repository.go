package repository

import (
	"context"
	"time"

	"pricemap/internal/domain/entity"
	"pricemap/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrReportNotFound is returned when a price report is not found.
var ErrReportNotFound = errors.New("price report not found")

// ReporterHistory is the narrow read view the consensus engine needs to
// weigh a reporter's credibility.
type ReporterHistory interface {
	// CountReportsByUser returns the lifetime number of reports of a user.
	CountReportsByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// FindRecentReportsByUser returns the user's reports made at or after since, newest first.
	FindRecentReportsByUser(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.PriceReport, error)
}

// PriceReportRepository defines the interface for raw price observations.
type PriceReportRepository interface {
	ReporterHistory

	// CreateReport persists a new report.
	CreateReport(ctx context.Context, report *entity.PriceReport) error

	// FindReportByID retrieves a report.
	FindReportByID(ctx context.Context, id uuid.UUID) (*entity.PriceReport, error)

	// FindReportsByShopAndProduct returns every report of a pair, newest first.
	FindReportsByShopAndProduct(ctx context.Context, shopID uuid.UUID, productID int64) ([]*entity.PriceReport, error)

	// HasUserReportedOn reports whether the user already reported the pair on day (UTC calendar day).
	HasUserReportedOn(ctx context.Context, productID int64, shopID, userID uuid.UUID, day time.Time) (bool, error)

	// UpdateReportPrice overwrites the price of a report.
	UpdateReportPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error

	// DeleteReport removes a report.
	DeleteReport(ctx context.Context, id uuid.UUID) error

	// SumProductPrices returns the sum and count of prices over every report of a product.
	SumProductPrices(ctx context.Context, productID int64) (decimal.Decimal, int64, error)
}
