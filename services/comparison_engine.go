// File: /services/comparison_engine.go
package services

import (
	"sort"

	"motogarage-api/models"
)

// BikeRef identifies a bike inside comparison output.
type BikeRef struct {
	ID       string  `json:"id"`
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Year     int     `json:"year"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type PerformanceEntry struct {
	Bike         BikeRef `json:"bike"`
	TopSpeed     float64 `json:"top_speed"`
	Acceleration float64 `json:"acceleration"`
	Power        float64 `json:"power"`
	Torque       float64 `json:"torque"`
	Score        float64 `json:"score"`
}

type EconomyEntry struct {
	Bike           BikeRef `json:"bike"`
	CityMileage    float64 `json:"city_mileage"`
	HighwayMileage float64 `json:"highway_mileage"`
	AvgMileage     float64 `json:"avg_mileage"`
	Price          float64 `json:"price"`
}

type DimensionEntry struct {
	Bike         BikeRef `json:"bike"`
	Weight       float64 `json:"weight"`
	SeatHeight   float64 `json:"seat_height"`
	FuelCapacity float64 `json:"fuel_capacity"`
	Wheelbase    float64 `json:"wheelbase"`
}

// Recommendations names the standout bike per use case. best_track and
// best_daily intentionally alias best_performance and best_economy.
type Recommendations struct {
	BestPerformance *BikeRef `json:"best_performance,omitempty"`
	BestEconomy     *BikeRef `json:"best_economy,omitempty"`
	BestTrack       *BikeRef `json:"best_track,omitempty"`
	BestDaily       *BikeRef `json:"best_daily,omitempty"`
}

type ComparisonResult struct {
	Performance     []PerformanceEntry `json:"performance"`
	Economy         []EconomyEntry     `json:"economy"`
	Dimensions      []DimensionEntry   `json:"dimensions"`
	Recommendations Recommendations    `json:"recommendations"`
}

// ComparisonEngine scores and ranks a set of bikes across performance,
// economy and dimension axes. Bikes without a spec record are skipped in
// the ranked lists.
type ComparisonEngine struct{}

func NewComparisonEngine() *ComparisonEngine {
	return &ComparisonEngine{}
}

func (ce *ComparisonEngine) CompareBikes(bikes []models.Bike) *ComparisonResult {
	return &ComparisonResult{
		Performance:     ce.comparePerformance(bikes),
		Economy:         ce.compareEconomy(bikes),
		Dimensions:      ce.compareDimensions(bikes),
		Recommendations: ce.generateRecommendations(bikes),
	}
}

func (ce *ComparisonEngine) comparePerformance(bikes []models.Bike) []PerformanceEntry {
	performance := []PerformanceEntry{}

	for _, bike := range bikes {
		if bike.Specs == nil {
			continue
		}
		performance = append(performance, PerformanceEntry{
			Bike:         bikeRef(bike),
			TopSpeed:     bike.Specs.TopSpeed,
			Acceleration: bike.Specs.Acceleration0To100,
			Power:        bike.Specs.MaxPower,
			Torque:       bike.Specs.MaxTorque,
			Score:        performanceScore(bike.Specs),
		})
	}

	sort.SliceStable(performance, func(i, j int) bool {
		return performance[i].Score > performance[j].Score
	})

	return performance
}

func (ce *ComparisonEngine) compareEconomy(bikes []models.Bike) []EconomyEntry {
	economy := []EconomyEntry{}

	for _, bike := range bikes {
		if bike.Specs == nil {
			continue
		}
		economy = append(economy, EconomyEntry{
			Bike:           bikeRef(bike),
			CityMileage:    bike.Specs.MileageCity,
			HighwayMileage: bike.Specs.MileageHighway,
			AvgMileage:     bike.Specs.AvgMileage(),
			Price:          bike.Price,
		})
	}

	sort.SliceStable(economy, func(i, j int) bool {
		return economy[i].AvgMileage > economy[j].AvgMileage
	})

	return economy
}

func (ce *ComparisonEngine) compareDimensions(bikes []models.Bike) []DimensionEntry {
	dimensions := []DimensionEntry{}

	for _, bike := range bikes {
		if bike.Specs == nil {
			continue
		}
		dimensions = append(dimensions, DimensionEntry{
			Bike:         bikeRef(bike),
			Weight:       bike.Specs.KerbWeight,
			SeatHeight:   bike.Specs.SeatHeight,
			FuelCapacity: bike.Specs.FuelCapacity,
			Wheelbase:    bike.Specs.Wheelbase,
		})
	}

	return dimensions
}

// performanceScore weights top speed and acceleration at 30 points each and
// power and torque at 20 each. Missing figures contribute nothing.
func performanceScore(specs *models.BikeSpec) float64 {
	score := 0.0

	if specs.TopSpeed > 0 {
		score += (specs.TopSpeed / 300) * 30
	}
	if specs.Acceleration0To100 > 0 {
		score += (10 / specs.Acceleration0To100) * 30 // lower is better
	}
	if specs.MaxPower > 0 {
		score += (specs.MaxPower / 200) * 20
	}
	if specs.MaxTorque > 0 {
		score += (specs.MaxTorque / 150) * 20
	}

	return round2(score)
}

func (ce *ComparisonEngine) generateRecommendations(bikes []models.Bike) Recommendations {
	if len(bikes) == 0 {
		return Recommendations{}
	}

	bestPower := bikes[0]
	bestMileage := bikes[0]
	for _, bike := range bikes[1:] {
		if specPower(bike) > specPower(bestPower) {
			bestPower = bike
		}
		if specMileage(bike) > specMileage(bestMileage) {
			bestMileage = bike
		}
	}

	performance := bikeRef(bestPower)
	economy := bikeRef(bestMileage)

	return Recommendations{
		BestPerformance: &performance,
		BestEconomy:     &economy,
		BestTrack:       &performance,
		BestDaily:       &economy,
	}
}

func specPower(bike models.Bike) float64 {
	if bike.Specs == nil {
		return 0
	}
	return bike.Specs.MaxPower
}

func specMileage(bike models.Bike) float64 {
	if bike.Specs == nil {
		return 0
	}
	return bike.Specs.AvgMileage()
}

func bikeRef(bike models.Bike) BikeRef {
	return BikeRef{
		ID:       bike.ID,
		Brand:    bike.Brand,
		Model:    bike.Model,
		Year:     bike.Year,
		Price:    bike.Price,
		Category: bike.Category,
	}
}
