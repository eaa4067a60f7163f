// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pricemap/internal/domain/entity"
	"pricemap/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for shop persistence.
var (
	// ErrShopNotFound is returned when a shop is not found.
	ErrShopNotFound = errors.New("shop not found")
	// ErrDeclarantExists is returned when a user is already a declarant of a shop.
	ErrDeclarantExists = errors.New("declarant already exists")
)

// ShopRepository defines the interface for shop-related database operations.
type ShopRepository interface {
	// CreateShop persists a new shop together with its initial declarants.
	CreateShop(ctx context.Context, shop *entity.Shop) error

	// FindShopByID retrieves a shop, declarants included.
	FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindShopsWithinBound returns every shop whose coordinates fall inside bound.
	// Callers refine the result with an exact distance filter.
	FindShopsWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Shop, error)

	// FindShopsByDeclarant returns the shops a user has declared, newest first.
	FindShopsByDeclarant(ctx context.Context, userID uuid.UUID) ([]*entity.Shop, error)

	// AddDeclarant appends userID to the shop's declarant set.
	// It returns ErrDeclarantExists when the user is already a member.
	AddDeclarant(ctx context.Context, shopID, userID uuid.UUID) error

	// UpdateShop persists moderation fields: status, activity and verification stamps.
	UpdateShop(ctx context.Context, shop *entity.Shop) error

	// LockArea serialises shop creation around bound until the surrounding
	// transaction ends. Implementations without concurrent writers may no-op.
	LockArea(ctx context.Context, bound orb.Bound) error
}
