// File: /models/accident_report.go
package models

import (
	"time"
)

type AccidentReport struct {
	ID         string `json:"id" gorm:"primaryKey;size:191"`
	UserBikeID string `json:"user_bike_id" gorm:"not null;size:191;index"`

	IncidentType string    `json:"incident_type" gorm:"not null;size:30"` // accident, breakdown, theft, vandalism
	Severity     string    `json:"severity" gorm:"size:20"`               // minor, moderate, severe
	IncidentDate time.Time `json:"incident_date" gorm:"not null"`
	Location     string    `json:"location" gorm:"size:100"`
	Description  string    `json:"description" gorm:"type:text"`
	RepairCost   float64   `json:"repair_cost"`

	CreatedAt time.Time `json:"created_at"`

	UserBike UserBike `json:"-" gorm:"foreignKey:UserBikeID"`
}
