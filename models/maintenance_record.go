// File: /models/maintenance_record.go
package models

import (
	"time"
)

type MaintenanceRecord struct {
	ID         string `json:"id" gorm:"primaryKey;size:191"`
	UserBikeID string `json:"user_bike_id" gorm:"not null;size:191;index"`

	MaintenanceType string    `json:"maintenance_type" gorm:"not null;size:50"` // regular_service, repair, parts_replacement, inspection
	ServiceDate     time.Time `json:"service_date" gorm:"not null"`
	OdometerReading int       `json:"odometer_reading"` // km at time of service

	// PartsReplaced is free text; the maintenance predictor matches tracked
	// component names against it case-insensitively.
	Description   string  `json:"description" gorm:"type:text"`
	PartsReplaced string  `json:"parts_replaced" gorm:"type:text"`
	Cost          float64 `json:"cost"`
	ServiceCenter string  `json:"service_center" gorm:"size:100"`

	NextServiceKM   int        `json:"next_service_km"`
	NextServiceDate *time.Time `json:"next_service_date"`

	CreatedAt time.Time `json:"created_at"`

	UserBike UserBike `json:"-" gorm:"foreignKey:UserBikeID"`
}
