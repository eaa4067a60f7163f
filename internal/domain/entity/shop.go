// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ShopStatus is the moderation state of a shop.
type ShopStatus string

const (
	ShopStatusPending    ShopStatus = "pending"
	ShopStatusVerified   ShopStatus = "verified"
	ShopStatusUnverified ShopStatus = "unverified"
	ShopStatusRejected   ShopStatus = "rejected"
	ShopStatusSuspended  ShopStatus = "suspended"
)

// IsValid reports whether s is one of the known statuses.
func (s ShopStatus) IsValid() bool {
	switch s {
	case ShopStatusPending, ShopStatusVerified, ShopStatusUnverified, ShopStatusRejected, ShopStatusSuspended:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moderation may move a shop from s to next.
// A rejected shop can only be brought back by verifying it.
func (s ShopStatus) CanTransitionTo(next ShopStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == ShopStatusRejected {
		return next == ShopStatusVerified
	}

	return true
}

// Shop is a physical point of sale that users report prices against.
type Shop struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address,omitempty"`
	City         string       `json:"city,omitempty"`
	Country      string       `json:"country,omitempty"`
	PostalCode   string       `json:"postal_code,omitempty"`
	Description  string       `json:"description,omitempty"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	Status       ShopStatus   `json:"status"`
	IsActive     bool         `json:"is_active"`
	Rating       float64      `json:"rating"`
	TotalReviews int          `json:"total_reviews"`
	Declarants   DeclarantSet `json:"declarants"`
	CreatedBy    uuid.UUID    `json:"created_by"`
	VerifiedBy   *uuid.UUID   `json:"verified_by,omitempty"`
	VerifiedAt   *time.Time   `json:"verified_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Point returns the shop position as an orb point (lon, lat).
func (s *Shop) Point() orb.Point {
	return orb.Point{s.Longitude, s.Latitude}
}
