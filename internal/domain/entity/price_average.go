package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceAverage is the product-wide mean over every report of a product,
// across all shops.
type PriceAverage struct {
	ProductID   int64           `json:"product_id"`
	AvgPrice    decimal.Decimal `json:"avg_price"`
	ReportCount int64           `json:"report_count"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
