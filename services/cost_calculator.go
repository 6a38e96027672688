// File: /services/cost_calculator.go
package services

import (
	"fmt"
	"math"

	"motogarage-api/models"
)

// Annual insurance rates in INR, per CC band.
type insuranceRateTable struct {
	below150   float64
	cc150to350 float64
	cc350to500 float64
	above500   float64
}

var insuranceRates = map[string]insuranceRateTable{
	"comprehensive": {below150: 2500, cc150to350: 4500, cc350to500: 8000, above500: 15000},
	"third_party":   {below150: 800, cc150to350: 1200, cc350to500: 1800, above500: 2500},
}

type CostBreakdown struct {
	FuelCost           float64 `json:"fuel_cost"`
	InsuranceCost      float64 `json:"insurance_cost"`
	MaintenanceCost    float64 `json:"maintenance_cost"`
	Depreciation       float64 `json:"depreciation"`
	RegistrationAnnual float64 `json:"registration_annual"`
	Accessories        float64 `json:"accessories"`
}

type CostTotals struct {
	AnnualCost  float64 `json:"annual_cost"`
	MonthlyCost float64 `json:"monthly_cost"`
	CostPerKM   float64 `json:"cost_per_km"`
}

type CostComparison struct {
	DailyCost    float64 `json:"daily_cost"`
	FiveYearCost float64 `json:"5_year_cost"`
}

type OwnershipCost struct {
	Breakdown  CostBreakdown  `json:"breakdown"`
	Totals     CostTotals     `json:"totals"`
	Comparison CostComparison `json:"comparison"`
}

// CostCalculator estimates the annualized total cost of owning a bike.
type CostCalculator struct{}

func NewCostCalculator() *CostCalculator {
	return &CostCalculator{}
}

// CalculateOwnershipCost computes the annual cost breakdown for a bike.
// Registration is amortized over 5 years; accessories are a flat yearly
// allowance. All monetary figures are in the caller's currency unit.
func (cc *CostCalculator) CalculateOwnershipCost(specs *models.BikeSpec, price, yearlyKM, fuelPrice float64, insuranceType string) (*OwnershipCost, error) {
	if yearlyKM < 0 {
		return nil, fmt.Errorf("yearly km must not be negative: %w", ErrInvalidInput)
	}
	if fuelPrice < 0 {
		return nil, fmt.Errorf("fuel price must not be negative: %w", ErrInvalidInput)
	}
	if specs == nil {
		return nil, ErrMissingSpec
	}
	if !specs.HasMileageData() {
		return nil, fmt.Errorf("mileage data: %w", ErrMissingSpec)
	}

	fuelCost := cc.fuelCost(specs, yearlyKM, fuelPrice)
	insuranceCost := cc.insuranceCost(specs.EngineCC, insuranceType)
	maintenanceCost := cc.maintenanceCost(specs, yearlyKM)
	depreciation := price * 0.15 // flat 15% per year

	registration := 5000.0 // one-time, amortized over 5 years
	accessories := 10000.0 // optional accessories per year

	totalAnnualCost := fuelCost + insuranceCost + maintenanceCost + depreciation + registration/5 + accessories

	costPerKM := 0.0
	if yearlyKM > 0 {
		costPerKM = totalAnnualCost / yearlyKM
	}

	return &OwnershipCost{
		Breakdown: CostBreakdown{
			FuelCost:           round2(fuelCost),
			InsuranceCost:      round2(insuranceCost),
			MaintenanceCost:    round2(maintenanceCost),
			Depreciation:       round2(depreciation),
			RegistrationAnnual: round2(registration / 5),
			Accessories:        round2(accessories),
		},
		Totals: CostTotals{
			AnnualCost:  round2(totalAnnualCost),
			MonthlyCost: round2(totalAnnualCost / 12),
			CostPerKM:   round2(costPerKM),
		},
		Comparison: CostComparison{
			DailyCost:    round2(totalAnnualCost / 365),
			FiveYearCost: round2(totalAnnualCost * 5),
		},
	}, nil
}

func (cc *CostCalculator) fuelCost(specs *models.BikeSpec, yearlyKM, fuelPrice float64) float64 {
	litersNeeded := yearlyKM / specs.AvgMileage()
	return litersNeeded * fuelPrice
}

func (cc *CostCalculator) insuranceCost(engineCC int, insuranceType string) float64 {
	rates, ok := insuranceRates[insuranceType]
	if !ok {
		rates = insuranceRates["comprehensive"]
	}

	switch {
	case engineCC < 150:
		return rates.below150
	case engineCC <= 350:
		return rates.cc150to350
	case engineCC <= 500:
		return rates.cc350to500
	default:
		return rates.above500
	}
}

func (cc *CostCalculator) maintenanceCost(specs *models.BikeSpec, yearlyKM float64) float64 {
	baseCost := 5000.0

	switch {
	case specs.EngineCC > 500:
		baseCost *= 2.5
	case specs.EngineCC > 300:
		baseCost *= 1.8
	case specs.EngineCC > 200:
		baseCost *= 1.4
	}

	servicesPerYear := yearlyKM / 3000 // service every 3000 km
	serviceCost := baseCost * servicesPerYear

	// Major parts (tyres, brake pads, chain kit) roughly every 15000 km
	partsCost := (yearlyKM / 15000) * 8000

	return serviceCost + partsCost
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
