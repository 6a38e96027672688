// File: /models/bike_spec.go
package models

import (
	"time"
)

// BikeSpec holds the manufacturer specification sheet for a bike.
// Numeric fields use zero as "not published"; calculators that require a
// field treat zero as missing data rather than defaulting it.
type BikeSpec struct {
	ID     string `json:"id" gorm:"primaryKey;size:191"`
	BikeID string `json:"bike_id" gorm:"not null;uniqueIndex;size:191"`

	// Engine
	EngineCC     int     `json:"engine_cc"`
	EngineType   string  `json:"engine_type" gorm:"size:100"`
	MaxPower     float64 `json:"max_power"` // HP
	MaxPowerRPM  int     `json:"max_power_rpm"`
	MaxTorque    float64 `json:"max_torque"` // Nm
	MaxTorqueRPM int     `json:"max_torque_rpm"`
	FuelSystem   string  `json:"fuel_system" gorm:"size:50"`

	// Performance
	TopSpeed           float64 `json:"top_speed"`          // km/h
	Acceleration0To100 float64 `json:"acceleration_0_100"` // seconds
	MileageCity        float64 `json:"mileage_city"`       // km/l
	MileageHighway     float64 `json:"mileage_highway"`    // km/l

	// Dimensions
	Length          float64 `json:"length"`           // mm
	Width           float64 `json:"width"`            // mm
	Height          float64 `json:"height"`           // mm
	Wheelbase       float64 `json:"wheelbase"`        // mm
	GroundClearance float64 `json:"ground_clearance"` // mm
	SeatHeight      float64 `json:"seat_height"`      // mm
	KerbWeight      float64 `json:"kerb_weight"`      // kg
	FuelCapacity    float64 `json:"fuel_capacity"`    // liters

	// Brakes & Suspension
	FrontBrake      string `json:"front_brake" gorm:"size:100"`
	RearBrake       string `json:"rear_brake" gorm:"size:100"`
	FrontSuspension string `json:"front_suspension" gorm:"size:100"`
	RearSuspension  string `json:"rear_suspension" gorm:"size:100"`

	// Tyres
	FrontTyre string `json:"front_tyre" gorm:"size:50"`
	RearTyre  string `json:"rear_tyre" gorm:"size:50"`

	CreatedAt time.Time `json:"created_at"`
}

// HasMileageData reports whether both mileage figures are present.
func (s *BikeSpec) HasMileageData() bool {
	return s != nil && s.MileageCity > 0 && s.MileageHighway > 0
}

// AvgMileage returns the average of city and highway mileage in km/l.
func (s *BikeSpec) AvgMileage() float64 {
	return (s.MileageCity + s.MileageHighway) / 2
}
