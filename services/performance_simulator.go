// File: /services/performance_simulator.go
package services

import (
	"fmt"
	"math"

	"motogarage-api/models"
)

type SimulationConditions struct {
	RiderWeight float64 `json:"rider_weight"`
	TotalWeight float64 `json:"total_weight"`
	RoadType    string  `json:"road_type"`
	Weather     string  `json:"weather"`
	RidingStyle string  `json:"riding_style"`
}

type PerformanceResult struct {
	AdjustedPower        float64              `json:"adjusted_power"`
	AdjustedAcceleration float64              `json:"adjusted_acceleration"`
	EstimatedTopSpeed    float64              `json:"estimated_top_speed"`
	FuelConsumption      float64              `json:"fuel_consumption"` // l/100km
	HeatLevel            int                  `json:"heat_level"`
	BrakeWear            string               `json:"brake_wear"`
	TyreWear             string               `json:"tyre_wear"`
	ChainWear            string               `json:"chain_wear"`
	Conditions           SimulationConditions `json:"conditions"`
}

// PerformanceSimulator estimates condition-adjusted performance figures.
// The numbers are simplified heuristics, not vehicle dynamics.
type PerformanceSimulator struct{}

func NewPerformanceSimulator() *PerformanceSimulator {
	return &PerformanceSimulator{}
}

// SimulatePerformance adjusts the spec-sheet figures for rider weight,
// road type, weather and riding style.
func (ps *PerformanceSimulator) SimulatePerformance(specs *models.BikeSpec, riderWeight float64, roadType, weather, ridingStyle string) (*PerformanceResult, error) {
	if riderWeight <= 0 {
		return nil, fmt.Errorf("rider weight must be positive: %w", ErrInvalidInput)
	}
	if specs == nil {
		return nil, ErrMissingSpec
	}
	if specs.KerbWeight <= 0 {
		return nil, fmt.Errorf("kerb weight: %w", ErrMissingSpec)
	}
	if !specs.HasMileageData() {
		return nil, fmt.Errorf("mileage data: %w", ErrMissingSpec)
	}

	totalWeight := specs.KerbWeight + riderWeight

	powerModifier := powerModifier(weather, roadType)
	adjustedPower := specs.MaxPower * powerModifier

	// TODO(product): styleModifier is computed but intentionally not folded
	// into the power/acceleration figures, matching the established outputs.
	// Whether it should be applied is an open product question.

	wear := predictComponentWear(ridingStyle, roadType)

	return &PerformanceResult{
		AdjustedPower:        round2(adjustedPower),
		AdjustedAcceleration: round2(adjustedAcceleration(specs, totalWeight, adjustedPower)),
		EstimatedTopSpeed:    round2(specs.TopSpeed * powerModifier),
		FuelConsumption:      round2(fuelConsumption(specs, ridingStyle, roadType)),
		HeatLevel:            heatLevel(ridingStyle, weather),
		BrakeWear:            wear.brake,
		TyreWear:             wear.tyre,
		ChainWear:            wear.chain,
		Conditions: SimulationConditions{
			RiderWeight: riderWeight,
			TotalWeight: totalWeight,
			RoadType:    roadType,
			Weather:     weather,
			RidingStyle: ridingStyle,
		},
	}, nil
}

func powerModifier(weather, roadType string) float64 {
	modifier := 1.0

	switch weather {
	case "rainy":
		modifier *= 0.85
	case "hot":
		modifier *= 0.95
	}

	switch roadType {
	case "city":
		modifier *= 0.90
	case "track":
		modifier *= 1.05
	}

	return modifier
}

// styleModifier reflects how riding style would scale performance. It is
// reported for reference only and deliberately left out of the adjusted
// power formula (see SimulatePerformance).
func styleModifier(ridingStyle string) float64 {
	switch ridingStyle {
	case "smooth":
		return 0.85
	case "aggressive":
		return 1.15
	default:
		return 1.0
	}
}

// adjustedAcceleration applies a power-to-weight scaling to the 0-100 time.
// The formula is a fixed heuristic; callers depend on its exact output.
func adjustedAcceleration(specs *models.BikeSpec, totalWeight, adjustedPower float64) float64 {
	if specs.Acceleration0To100 == 0 {
		return 0
	}

	powerToWeight := adjustedPower / totalWeight
	weightFactor := totalWeight / specs.KerbWeight

	return specs.Acceleration0To100 * weightFactor / powerToWeight * 10
}

func fuelConsumption(specs *models.BikeSpec, ridingStyle, roadType string) float64 {
	baseConsumption := 100 / specs.AvgMileage()

	switch ridingStyle {
	case "aggressive":
		baseConsumption *= 1.3
	case "smooth":
		baseConsumption *= 0.85
	}

	switch roadType {
	case "city":
		baseConsumption *= 1.2
	case "highway":
		baseConsumption *= 0.9
	}

	return baseConsumption
}

func heatLevel(ridingStyle, weather string) int {
	heat := 50 // base heat percentage

	switch ridingStyle {
	case "aggressive":
		heat += 30
	case "smooth":
		heat += 10
	}

	switch weather {
	case "hot":
		heat += 15
	case "cold":
		heat -= 10
	}

	return min(max(heat, 0), 100)
}

type componentWear struct {
	brake, tyre, chain string
}

func predictComponentWear(ridingStyle, roadType string) componentWear {
	baseWear := 1.0
	var brakeWear, tyreWear, chainWear float64

	switch ridingStyle {
	case "aggressive":
		brakeWear = baseWear * 1.5
		tyreWear = baseWear * 1.4
		chainWear = baseWear * 1.3
	case "smooth":
		brakeWear = baseWear * 0.7
		tyreWear = baseWear * 0.8
		chainWear = baseWear * 0.85
	default:
		brakeWear = baseWear
		tyreWear = baseWear
		chainWear = baseWear
	}

	if roadType == "track" {
		brakeWear *= 1.8
		tyreWear *= 2.0
	}

	return componentWear{
		brake: wearPercent(brakeWear),
		tyre:  wearPercent(tyreWear),
		chain: wearPercent(chainWear),
	}
}

func wearPercent(wear float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(wear*100)))
}
