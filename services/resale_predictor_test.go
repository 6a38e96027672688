// File: /services/resale_predictor_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictResaleValueTypicalCase(t *testing.T) {
	rp := NewResalePredictor()

	// 2-year-old Honda, 16000 km, good condition:
	//   age       = 1 - 0.15*2          = 0.70
	//   km        = 8000 km/yr avg      = 0.90
	//   condition = good                = 0.75
	//   brand     = Honda               = 1.00
	//   value     = 150000 * 0.4725     = 70875
	result, err := rp.PredictResaleValue("Honda", 150000, 2, 16000, "good")
	require.NoError(t, err)

	assert.Equal(t, 70875.0, result.PredictedValue)
	assert.Equal(t, 150000.0, result.PurchasePrice)
	assert.Equal(t, 79125.0, result.TotalDepreciation)
	assert.Equal(t, 52.75, result.DepreciationPercentage)

	assert.Equal(t, 70.0, result.Factors.AgeFactor)
	assert.Equal(t, 90.0, result.Factors.KMFactor)
	assert.Equal(t, 75.0, result.Factors.ConditionFactor)
	assert.Equal(t, 100.0, result.Factors.BrandFactor)
}

func TestPredictResaleValueNeverExceedsPriceWithoutPremiumBrand(t *testing.T) {
	rp := NewResalePredictor()

	// All factors <= 1 keeps the prediction at or under the purchase price.
	result, err := rp.PredictResaleValue("Hero", 120000, 1, 3000, "excellent")
	require.NoError(t, err)
	assert.LessOrEqual(t, result.PredictedValue, result.PurchasePrice)
	assert.GreaterOrEqual(t, result.TotalDepreciation, 0.0)
}

func TestPredictResaleValuePremiumBrandRetention(t *testing.T) {
	rp := NewResalePredictor()

	premium, err := rp.PredictResaleValue("KTM Duke", 250000, 2, 10000, "good")
	require.NoError(t, err)
	average, err := rp.PredictResaleValue("Generic Motors", 250000, 2, 10000, "good")
	require.NoError(t, err)

	assert.Equal(t, 110.0, premium.Factors.BrandFactor)
	assert.Equal(t, 90.0, average.Factors.BrandFactor)
	assert.Greater(t, premium.PredictedValue, average.PredictedValue)
}

func TestPredictResaleValueBrandMatchIsCaseInsensitive(t *testing.T) {
	rp := NewResalePredictor()

	for _, brand := range []string{"kawasaki", "KAWASAKI", "Kawasaki Ninja"} {
		result, err := rp.PredictResaleValue(brand, 200000, 1, 5000, "good")
		require.NoError(t, err)
		assert.Equal(t, 110.0, result.Factors.BrandFactor, "brand=%s", brand)
	}

	result, err := rp.PredictResaleValue("royal enfield classic", 180000, 1, 5000, "good")
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Factors.BrandFactor)
}

func TestPredictResaleValueKMBands(t *testing.T) {
	rp := NewResalePredictor()

	cases := []struct {
		kmDriven int
		yearsOld int
		expected float64
	}{
		{4000, 1, 95.0},
		{9000, 1, 90.0},
		{14000, 1, 80.0},
		{20000, 1, 70.0},
		// years_old = 0 uses km_driven itself as the annual figure.
		{4500, 0, 95.0},
		{16000, 0, 70.0},
	}

	for _, tc := range cases {
		result, err := rp.PredictResaleValue("Honda", 150000, tc.yearsOld, tc.kmDriven, "good")
		require.NoError(t, err)
		assert.Equal(t, tc.expected, result.Factors.KMFactor, "km=%d years=%d", tc.kmDriven, tc.yearsOld)
	}
}

func TestPredictResaleValueUnknownCondition(t *testing.T) {
	rp := NewResalePredictor()

	result, err := rp.PredictResaleValue("Honda", 150000, 1, 5000, "mint")
	require.NoError(t, err)
	assert.Equal(t, 70.0, result.Factors.ConditionFactor)
}

func TestPredictResaleValueOldBikeGoesNegative(t *testing.T) {
	rp := NewResalePredictor()

	// Past roughly year 8 the age curve crosses zero: at 12 years the
	// factor is 0.55 - 0.10*9 = -0.35. The raw curve is reported without
	// clamping.
	result, err := rp.PredictResaleValue("Honda", 100000, 12, 60000, "fair")
	require.NoError(t, err)

	assert.Equal(t, -35.0, result.Factors.AgeFactor)
	assert.Less(t, result.PredictedValue, 0.0)
	assert.Greater(t, result.TotalDepreciation, result.PurchasePrice)
}

func TestPredictResaleValueMarketDemand(t *testing.T) {
	rp := NewResalePredictor()

	cases := []struct {
		yearsOld int
		demand   string
		bestTime string
	}{
		{1, "high", "March-April"},
		{2, "high", "March-April"},
		{4, "medium", "Year-round"},
		{7, "low", "Year-round"},
	}

	for _, tc := range cases {
		result, err := rp.PredictResaleValue("Honda", 150000, tc.yearsOld, 5000*tc.yearsOld, "good")
		require.NoError(t, err)
		assert.Equal(t, tc.demand, result.MarketAnalysis.DemandLevel, "years=%d", tc.yearsOld)
		assert.Equal(t, tc.bestTime, result.MarketAnalysis.BestTimeToSell, "years=%d", tc.yearsOld)
	}
}

func TestPredictResaleValueSellingTips(t *testing.T) {
	rp := NewResalePredictor()

	recent, err := rp.PredictResaleValue("Honda", 150000, 2, 10000, "good")
	require.NoError(t, err)
	assert.Len(t, recent.SellingTips, 4)

	rough, err := rp.PredictResaleValue("Honda", 150000, 7, 50000, "poor")
	require.NoError(t, err)
	assert.Len(t, rough.SellingTips, 8)
	assert.Contains(t, rough.SellingTips, "Be transparent about issues")
	assert.Contains(t, rough.SellingTips, "Emphasize low running costs")
}

func TestPredictResaleValueInvalidInputs(t *testing.T) {
	rp := NewResalePredictor()

	_, err := rp.PredictResaleValue("Honda", 0, 2, 10000, "good")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = rp.PredictResaleValue("Honda", 150000, -1, 10000, "good")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = rp.PredictResaleValue("Honda", 150000, 2, -100, "good")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
