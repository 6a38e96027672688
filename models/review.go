// File: /models/review.go
package models

import (
	"time"
)

type Review struct {
	ID     string `json:"id" gorm:"primaryKey;size:191"`
	UserID string `json:"user_id" gorm:"not null;size:191"`
	BikeID string `json:"bike_id" gorm:"not null;size:191;index"`

	Rating        int    `json:"rating" gorm:"not null"` // 1-5
	Title         string `json:"title" gorm:"size:100"`
	Content       string `json:"content" gorm:"type:text"`
	OwnershipKM   int    `json:"ownership_km"`
	OwnedDuration string `json:"owned_duration" gorm:"size:50"`

	CreatedAt time.Time `json:"created_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
	Bike Bike `json:"-" gorm:"foreignKey:BikeID"`
}
