// File: /models/bike.go
package models

import (
	"time"
)

type Bike struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Brand     string    `json:"brand" gorm:"not null;size:50;index"`
	Model     string    `json:"model" gorm:"not null;size:100;index"`
	Year      int       `json:"year" gorm:"not null"`
	Category  string    `json:"category" gorm:"size:50"` // sport, supersport, naked, touring, adventure, cruiser
	ImageURL  string    `json:"image_url" gorm:"size:500"`
	Price     float64   `json:"price"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Specs *BikeSpec `json:"specs,omitempty" gorm:"foreignKey:BikeID"`
}
