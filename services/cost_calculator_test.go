// File: /services/cost_calculator_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motogarage-api/models"
)

func commuterSpecs() *models.BikeSpec {
	return &models.BikeSpec{
		EngineCC:       155,
		MileageCity:    45,
		MileageHighway: 50,
	}
}

func TestCalculateOwnershipCostGoldenScenario(t *testing.T) {
	cc := NewCostCalculator()

	// 155cc commuter, 10000 km/year at 105/l, comprehensive cover:
	//   fuel        = 10000 / 47.5 * 105        = 22105.26
	//   insurance   = 4500 (150cc-350cc band)
	//   maintenance = 5000*(10000/3000) + (10000/15000)*8000
	//               = 16666.67 + 5333.33        = 22000.00
	//   depreciation= 197000 * 0.15             = 29550.00
	//   registration= 5000/5                    = 1000.00
	//   accessories                             = 10000.00
	//   annual      = 89155.26
	result, err := cc.CalculateOwnershipCost(commuterSpecs(), 197000, 10000, 105, "comprehensive")
	require.NoError(t, err)

	assert.Equal(t, 22105.26, result.Breakdown.FuelCost)
	assert.Equal(t, 4500.0, result.Breakdown.InsuranceCost)
	assert.Equal(t, 22000.0, result.Breakdown.MaintenanceCost)
	assert.Equal(t, 29550.0, result.Breakdown.Depreciation)
	assert.Equal(t, 1000.0, result.Breakdown.RegistrationAnnual)
	assert.Equal(t, 10000.0, result.Breakdown.Accessories)

	assert.Equal(t, 89155.26, result.Totals.AnnualCost)
	assert.Equal(t, 7429.61, result.Totals.MonthlyCost)
	assert.Equal(t, 8.92, result.Totals.CostPerKM)

	assert.Equal(t, 244.26, result.Comparison.DailyCost)
	assert.Equal(t, 445776.32, result.Comparison.FiveYearCost)
}

func TestCalculateOwnershipCostPerKMConsistency(t *testing.T) {
	cc := NewCostCalculator()

	yearlyKM := 12000.0
	result, err := cc.CalculateOwnershipCost(commuterSpecs(), 150000, yearlyKM, 100, "third_party")
	require.NoError(t, err)

	assert.InDelta(t, result.Totals.AnnualCost/yearlyKM, result.Totals.CostPerKM, 0.005)
}

func TestCalculateOwnershipCostZeroYearlyKM(t *testing.T) {
	cc := NewCostCalculator()

	result, err := cc.CalculateOwnershipCost(commuterSpecs(), 150000, 0, 100, "comprehensive")
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Totals.CostPerKM)
	assert.Equal(t, 0.0, result.Breakdown.FuelCost)
}

func TestCalculateOwnershipCostInsuranceBands(t *testing.T) {
	cc := NewCostCalculator()

	cases := []struct {
		engineCC      int
		insuranceType string
		expected      float64
	}{
		{120, "comprehensive", 2500},
		{149, "comprehensive", 2500},
		{150, "comprehensive", 4500},
		{350, "comprehensive", 4500},
		{351, "comprehensive", 8000},
		{500, "comprehensive", 8000},
		{650, "comprehensive", 15000},
		{120, "third_party", 800},
		{250, "third_party", 1200},
		{400, "third_party", 1800},
		{1000, "third_party", 2500},
		// Unknown insurance types fall back to comprehensive rates.
		{250, "zero_dep", 4500},
	}

	for _, tc := range cases {
		specs := commuterSpecs()
		specs.EngineCC = tc.engineCC
		result, err := cc.CalculateOwnershipCost(specs, 150000, 8000, 100, tc.insuranceType)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, result.Breakdown.InsuranceCost,
			"engine_cc=%d insurance_type=%s", tc.engineCC, tc.insuranceType)
	}
}

func TestCalculateOwnershipCostCCMultipliers(t *testing.T) {
	cc := NewCostCalculator()

	// At 3000 km/year exactly one service cycle runs, so the maintenance
	// figure is base*multiplier + (3000/15000)*8000 = base*m + 1600.
	cases := []struct {
		engineCC int
		expected float64
	}{
		{180, 5000*1.0 + 1600},
		{201, 5000*1.4 + 1600},
		{301, 5000*1.8 + 1600},
		{501, 5000*2.5 + 1600},
	}

	for _, tc := range cases {
		specs := commuterSpecs()
		specs.EngineCC = tc.engineCC
		result, err := cc.CalculateOwnershipCost(specs, 150000, 3000, 100, "comprehensive")
		require.NoError(t, err)
		assert.Equal(t, tc.expected, result.Breakdown.MaintenanceCost, "engine_cc=%d", tc.engineCC)
	}
}

func TestCalculateOwnershipCostMissingSpecs(t *testing.T) {
	cc := NewCostCalculator()

	_, err := cc.CalculateOwnershipCost(nil, 150000, 8000, 100, "comprehensive")
	assert.ErrorIs(t, err, ErrMissingSpec)

	// Mileage figures are required, not defaulted.
	specs := commuterSpecs()
	specs.MileageHighway = 0
	_, err = cc.CalculateOwnershipCost(specs, 150000, 8000, 100, "comprehensive")
	assert.ErrorIs(t, err, ErrMissingSpec)
}

func TestCalculateOwnershipCostRejectsNegativeInput(t *testing.T) {
	cc := NewCostCalculator()

	_, err := cc.CalculateOwnershipCost(commuterSpecs(), 150000, -1, 100, "comprehensive")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = cc.CalculateOwnershipCost(commuterSpecs(), 150000, 8000, -5, "comprehensive")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
