package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel is the GORM-specific struct for the 'shops' table.
type ShopModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Address      string     `gorm:"type:text"`
	City         string     `gorm:"type:varchar(120)"`
	Country      string     `gorm:"type:varchar(120)"`
	PostalCode   string     `gorm:"type:varchar(20)"`
	Description  string     `gorm:"type:text"`
	Latitude     float64    `gorm:"type:decimal(10,8);not null;index:idx_shops_on_coordinates"`
	Longitude    float64    `gorm:"type:decimal(11,8);not null;index:idx_shops_on_coordinates"`
	Status       string     `gorm:"type:varchar(20);not null;default:'unverified';index"`
	IsActive     bool       `gorm:"not null;default:true"`
	Rating       float64    `gorm:"type:decimal(3,2);not null;default:0"`
	TotalReviews int        `gorm:"not null;default:0"`
	CreatedBy    uuid.UUID  `gorm:"type:uuid;not null"`
	VerifiedBy   *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Declarants []ShopDeclarantModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// ShopDeclarantModel is one member of a shop's declarant set.
type ShopDeclarantModel struct {
	ShopID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	DeclaredAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ShopDeclarantModel) TableName() string {
	return "shop_declarants"
}
