package model

import (
	"time"
)

// LocationModel is the GORM-specific struct for the 'trip_locations' table.
type LocationModel struct {
	ID         string  `gorm:"type:varchar(64);primaryKey"`
	OwnerID    string  `gorm:"type:varchar(128);not null;index:idx_trip_locations_on_owner"`
	Name       string  `gorm:"type:varchar(255);not null"`
	Longitude  float64 `gorm:"type:double precision;not null"`
	Latitude   float64 `gorm:"type:double precision;not null"`
	CategoryID *string `gorm:"type:varchar(64);index:idx_trip_locations_on_category"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "trip_locations"
}
