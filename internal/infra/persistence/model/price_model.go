package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopProductModel is the GORM-specific struct for the 'shop_products' table.
type ShopProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ShopID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_shop_products_on_pair"`
	ProductID   int64           `gorm:"not null;uniqueIndex:idx_shop_products_on_pair"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsAvailable bool            `gorm:"not null;default:true"`
	PricedAt    time.Time       `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopProductModel) TableName() string {
	return "shop_products"
}

// PriceReportModel is the GORM-specific struct for the 'price_reports' table.
type PriceReportModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID      int64           `gorm:"not null;index:idx_price_reports_on_pair;index:idx_price_reports_on_daily,priority:1"`
	ShopID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_price_reports_on_pair;index:idx_price_reports_on_daily,priority:2"`
	ReportedBy     uuid.UUID       `gorm:"type:uuid;not null;index:idx_price_reports_on_reporter,priority:1;index:idx_price_reports_on_daily,priority:3"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	GPSAccuracy    *float64        `gorm:"column:gps_accuracy"`
	DistanceMeters float64         `gorm:"not null;default:0"`
	ReportedAt     time.Time       `gorm:"not null;index:idx_price_reports_on_reporter,priority:2"`
	ReportDate     time.Time       `gorm:"type:date;not null;index:idx_price_reports_on_daily,priority:4"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PriceReportModel) TableName() string {
	return "price_reports"
}

// PriceAverageModel is the GORM-specific struct for the 'price_averages' table.
type PriceAverageModel struct {
	ProductID   int64           `gorm:"primaryKey;autoIncrement:false"`
	AvgPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null;index"`
	ReportCount int64           `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PriceAverageModel) TableName() string {
	return "price_averages"
}
