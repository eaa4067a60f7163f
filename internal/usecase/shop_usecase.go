package usecase

import (
	"context"

	"pricemap/internal/domain/entity"

	"github.com/google/uuid"
)

// NearbyShopsInput is the query of a proximity search.
type NearbyShopsInput struct {
	ProductID    int64   `json:"product_id"` // optional, 0 skips the hasProduct lookup
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

// NearbyShop is one proximity search hit.
type NearbyShop struct {
	Shop           *entity.Shop `json:"shop"`
	DistanceMeters float64      `json:"distance_meters"`
	HasProduct     bool         `json:"has_product"`
}

// NearbyShopsResult lists the hits ordered by ascending distance.
type NearbyShopsResult struct {
	Shops        []*NearbyShop `json:"shops"`
	Count        int           `json:"count"`
	CanCreateNew bool          `json:"can_create_new"`
	RadiusMeters float64       `json:"radius_meters"`
}

// DeclareShopInput represents a user claiming presence at an existing shop.
type DeclareShopInput struct {
	ShopID      uuid.UUID `json:"shop_id"`
	UserID      uuid.UUID `json:"user_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	GPSAccuracy *float64  `json:"gps_accuracy,omitempty"`
}

// DeclareShopResult is the outcome of a successful declaration.
type DeclareShopResult struct {
	Shop           *entity.Shop `json:"shop"`
	DistanceMeters float64      `json:"distance_meters"`
	Message        string       `json:"message"`
}

// ShopUsecase defines the interface for shop discovery and moderation use cases
type ShopUsecase interface {
	// FindNearbyShops returns active shops within the radius of a point, closest first.
	FindNearbyShops(ctx context.Context, input *NearbyShopsInput) (*NearbyShopsResult, error)

	// GetShop retrieves a shop with its declarants.
	GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error)

	// ListShopProducts returns the displayed prices of a shop.
	ListShopProducts(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopProduct, error)

	// ListDeclaredShops returns the shops a user has declared.
	ListDeclaredShops(ctx context.Context, userID uuid.UUID) ([]*entity.Shop, error)

	// DeclareShop adds the user to the declarants of a shop they are standing at.
	DeclareShop(ctx context.Context, input *DeclareShopInput) (*DeclareShopResult, error)

	// GenerateShopQR renders a share code for a shop.
	GenerateShopQR(ctx context.Context, shopID uuid.UUID) ([]byte, error)

	// Moderation, admin only
	VerifyShop(ctx context.Context, shopID, adminID uuid.UUID) (*entity.Shop, error)
	RejectShop(ctx context.Context, shopID, adminID uuid.UUID) (*entity.Shop, error)
	SuspendShop(ctx context.Context, shopID, adminID uuid.UUID) (*entity.Shop, error)
	SetShopActive(ctx context.Context, shopID uuid.UUID, active bool) (*entity.Shop, error)
}

// ShopAuditResult is the outcome of a post-creation duplicate audit.
type ShopAuditResult struct {
	ShopID      uuid.UUID   `json:"shop_id"`
	DuplicateOf []uuid.UUID `json:"duplicate_of,omitempty"`
	Flagged     bool        `json:"flagged"`
}

// ShopAuditUsecase reviews shops after creation.
type ShopAuditUsecase interface {
	// AuditNewShop moves a shop to pending when an older active shop sits
	// inside the reporting radius.
	AuditNewShop(ctx context.Context, shopID uuid.UUID) (*ShopAuditResult, error)
}
