// File: /services/comparison_engine_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motogarage-api/models"
)

func comparisonBike(id, brand, model string, specs *models.BikeSpec) models.Bike {
	return models.Bike{
		ID:       id,
		Brand:    brand,
		Model:    model,
		Year:     2023,
		Price:    250000,
		Category: "sport",
		Specs:    specs,
	}
}

func TestCompareBikesDominatingBikeRanksFirst(t *testing.T) {
	ce := NewComparisonEngine()

	strong := comparisonBike("b1", "Kawasaki", "Ninja 650", &models.BikeSpec{
		TopSpeed:           210,
		Acceleration0To100: 4.0,
		MaxPower:           68,
		MaxTorque:          64,
		MileageCity:        20,
		MileageHighway:     25,
	})
	weak := comparisonBike("b2", "Honda", "CB350", &models.BikeSpec{
		TopSpeed:           130,
		Acceleration0To100: 7.5,
		MaxPower:           21,
		MaxTorque:          30,
		MileageCity:        35,
		MileageHighway:     45,
	})

	result := ce.CompareBikes([]models.Bike{weak, strong})

	require.Len(t, result.Performance, 2)
	assert.Equal(t, "b1", result.Performance[0].Bike.ID)
	assert.Greater(t, result.Performance[0].Score, result.Performance[1].Score)

	// Economy ranks the frugal bike first.
	require.Len(t, result.Economy, 2)
	assert.Equal(t, "b2", result.Economy[0].Bike.ID)
	assert.Equal(t, 40.0, result.Economy[0].AvgMileage)
}

func TestCompareBikesPerformanceScore(t *testing.T) {
	ce := NewComparisonEngine()

	// top 300 -> 30, accel 5.0 -> (10/5)*30 = 60,
	// power 100 -> 10, torque 75 -> 10; total 110.
	bike := comparisonBike("b1", "Test", "Bench", &models.BikeSpec{
		TopSpeed:           300,
		Acceleration0To100: 5.0,
		MaxPower:           100,
		MaxTorque:          75,
		MileageCity:        20,
		MileageHighway:     20,
	})

	result := ce.CompareBikes([]models.Bike{bike})
	require.Len(t, result.Performance, 1)
	assert.Equal(t, 110.0, result.Performance[0].Score)
}

func TestCompareBikesSkipsSpecless(t *testing.T) {
	ce := NewComparisonEngine()

	withSpecs := comparisonBike("b1", "Yamaha", "R15", &models.BikeSpec{
		TopSpeed:           140,
		Acceleration0To100: 6.5,
		MaxPower:           18,
		MaxTorque:          14,
		MileageCity:        40,
		MileageHighway:     50,
	})
	noSpecs := comparisonBike("b2", "Mystery", "Unknown", nil)

	result := ce.CompareBikes([]models.Bike{withSpecs, noSpecs})

	assert.Len(t, result.Performance, 1)
	assert.Len(t, result.Economy, 1)
	assert.Len(t, result.Dimensions, 1)

	// Spec-less bikes still participate in recommendations, ranked as zero.
	require.NotNil(t, result.Recommendations.BestPerformance)
	assert.Equal(t, "b1", result.Recommendations.BestPerformance.ID)
}

func TestCompareBikesRecommendationAliases(t *testing.T) {
	ce := NewComparisonEngine()

	powerful := comparisonBike("b1", "Ducati", "Panigale", &models.BikeSpec{
		TopSpeed:           290,
		Acceleration0To100: 3.1,
		MaxPower:           150,
		MaxTorque:          110,
		MileageCity:        14,
		MileageHighway:     18,
	})
	frugal := comparisonBike("b2", "Honda", "Shine", &models.BikeSpec{
		TopSpeed:           95,
		Acceleration0To100: 12,
		MaxPower:           8,
		MaxTorque:          10,
		MileageCity:        55,
		MileageHighway:     65,
	})

	result := ce.CompareBikes([]models.Bike{powerful, frugal})
	recs := result.Recommendations

	require.NotNil(t, recs.BestPerformance)
	require.NotNil(t, recs.BestEconomy)
	assert.Equal(t, "b1", recs.BestPerformance.ID)
	assert.Equal(t, "b2", recs.BestEconomy.ID)

	// best_track and best_daily intentionally mirror the other two picks.
	assert.Equal(t, recs.BestPerformance, recs.BestTrack)
	assert.Equal(t, recs.BestEconomy, recs.BestDaily)
}

func TestCompareBikesDimensions(t *testing.T) {
	ce := NewComparisonEngine()

	bike := comparisonBike("b1", "Suzuki", "Gixxer", &models.BikeSpec{
		KerbWeight:     148,
		SeatHeight:     795,
		FuelCapacity:   12,
		Wheelbase:      1335,
		MileageCity:    40,
		MileageHighway: 45,
	})

	result := ce.CompareBikes([]models.Bike{bike})
	require.Len(t, result.Dimensions, 1)

	d := result.Dimensions[0]
	assert.Equal(t, 148.0, d.Weight)
	assert.Equal(t, 795.0, d.SeatHeight)
	assert.Equal(t, 12.0, d.FuelCapacity)
	assert.Equal(t, 1335.0, d.Wheelbase)
}

func TestCompareBikesEmptyInput(t *testing.T) {
	ce := NewComparisonEngine()

	result := ce.CompareBikes(nil)
	assert.Empty(t, result.Performance)
	assert.Empty(t, result.Economy)
	assert.Empty(t, result.Dimensions)
	assert.Nil(t, result.Recommendations.BestPerformance)
	assert.Nil(t, result.Recommendations.BestDaily)
}
