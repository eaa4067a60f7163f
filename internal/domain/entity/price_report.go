package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceReport is one raw price observation made by a user at a shop.
type PriceReport struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      int64           `json:"product_id"`
	ShopID         uuid.UUID       `json:"shop_id"`
	ReportedBy     uuid.UUID       `json:"reported_by"`
	Price          decimal.Decimal `json:"price"`
	GPSAccuracy    *float64        `json:"gps_accuracy,omitempty"`
	DistanceMeters float64         `json:"distance_meters"`
	ReportedAt     time.Time       `json:"reported_at"`
	ReportDate     time.Time       `json:"report_date"` // UTC calendar day of ReportedAt
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ReportDay truncates t to its UTC calendar day, the key used for daily
// duplicate suppression.
func ReportDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
