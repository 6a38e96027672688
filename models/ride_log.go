// File: /models/ride_log.go
package models

import (
	"time"
)

type RideLog struct {
	ID         string `json:"id" gorm:"primaryKey;size:191"`
	UserBikeID string `json:"user_bike_id" gorm:"not null;size:191;index"`

	RideDate     time.Time `json:"ride_date"`
	Distance     float64   `json:"distance"`      // km
	Duration     int       `json:"duration"`      // minutes
	AvgSpeed     float64   `json:"avg_speed"`     // km/h
	MaxSpeed     float64   `json:"max_speed"`     // km/h
	FuelConsumed float64   `json:"fuel_consumed"` // liters

	RoadType         string `json:"road_type" gorm:"size:20"`         // city, highway, track
	WeatherCondition string `json:"weather_condition" gorm:"size:20"` // sunny, rainy, cloudy, foggy, hot, cold
	RidingStyle      string `json:"riding_style" gorm:"size:20"`      // smooth, moderate, aggressive

	StartLocation string `json:"start_location" gorm:"size:100"`
	EndLocation   string `json:"end_location" gorm:"size:100"`
	Notes         string `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`

	UserBike UserBike `json:"-" gorm:"foreignKey:UserBikeID"`
}
