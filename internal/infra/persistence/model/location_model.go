package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
// Geom holds a PostGIS point and is written through ST_GeomFromEWKB.
type LocationModel struct {
	ShopID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Geom      []byte    `gorm:"type:geometry(Point,4326);not null;index:idx_locations_on_geom,type:gist"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// LocationRow is the projection read back from 'locations' with the point
// split into coordinates.
type LocationRow struct {
	ShopID    uuid.UUID
	Latitude  float64
	Longitude float64
	UpdatedAt time.Time
}
