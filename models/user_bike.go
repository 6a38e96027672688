// File: /models/user_bike.go
package models

import (
	"time"
)

type UserBike struct {
	ID     string `json:"id" gorm:"primaryKey;size:191"`
	UserID string `json:"user_id" gorm:"not null;size:191;index"`
	BikeID string `json:"bike_id" gorm:"not null;size:191"`

	PurchaseDate       *time.Time `json:"purchase_date"`
	PurchasePrice      float64    `json:"purchase_price"`
	CurrentKM          int        `json:"current_km" gorm:"default:0"` // monotonically non-decreasing
	RegistrationNumber string     `json:"registration_number" gorm:"size:20;uniqueIndex"`
	BikeCondition      string     `json:"bike_condition" gorm:"size:20;default:good"` // excellent, good, fair, poor

	Modifications string      `json:"modifications" gorm:"type:text"`
	BikeImages    StringSlice `json:"bike_images" gorm:"type:json"`

	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User               User                `json:"user" gorm:"foreignKey:UserID"`
	Bike               Bike                `json:"bike" gorm:"foreignKey:BikeID"`
	RideLogs           []RideLog           `json:"ride_logs,omitempty" gorm:"foreignKey:UserBikeID"`
	MaintenanceRecords []MaintenanceRecord `json:"maintenance_records,omitempty" gorm:"foreignKey:UserBikeID"`
}
