package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopProduct is the price users see for a product at a shop. Price is always
// the output of the consensus engine over the pair's reports, never raw input
// except for the very first report.
type ShopProduct struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shop_id"`
	ProductID   int64           `json:"product_id"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
	PricedAt    time.Time       `json:"priced_at"` // last time the engine set Price
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
