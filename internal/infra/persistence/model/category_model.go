package model

import (
	"time"
)

// CategoryModel is the GORM-specific struct for the 'trip_categories' table.
type CategoryModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	OwnerID   string `gorm:"type:varchar(128);not null;index:idx_trip_categories_on_owner"`
	Name      string `gorm:"type:varchar(100);not null"`
	Color     string `gorm:"type:varchar(32);not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "trip_categories"
}
