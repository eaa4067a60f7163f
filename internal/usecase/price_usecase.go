package usecase

import (
	"context"
	"time"

	"pricemap/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// RefreshResult counts what a stale price refresh did.
type RefreshResult struct {
	Scanned   int `json:"scanned"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Failed    int `json:"failed"`
}

// PriceUsecase defines the interface for product-wide price queries
type PriceUsecase interface {
	GetProductAverage(ctx context.Context, productID int64) (*entity.PriceAverage, error)
	FindAveragesInRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]*entity.PriceAverage, error)
	FindCheapest(ctx context.Context, limit int) ([]*entity.PriceAverage, error)

	// RefreshStalePrices reruns the consensus engine for shop products whose
	// price was computed more than staleAfter ago.
	RefreshStalePrices(ctx context.Context, staleAfter time.Duration) (*RefreshResult, error)
}
