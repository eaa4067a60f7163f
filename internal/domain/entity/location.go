package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ShopLocation is the denormalized spatial record of a shop, kept 1:1 with
// Shop so radius queries can run against a geometry index.
type ShopLocation struct {
	ShopID    uuid.UUID `json:"shop_id"`
	Point     orb.Point `json:"point"` // lon, lat in WGS84
	UpdatedAt time.Time `json:"updated_at"`
}

// Latitude returns the point's latitude.
func (l *ShopLocation) Latitude() float64 {
	return l.Point.Lat()
}

// Longitude returns the point's longitude.
func (l *ShopLocation) Longitude() float64 {
	return l.Point.Lon()
}
