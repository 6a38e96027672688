// File: /services/maintenance_predictor_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motogarage-api/models"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func serviceRecord(daysAgo int, partsReplaced string, odometerKM int) models.MaintenanceRecord {
	return models.MaintenanceRecord{
		ServiceDate:     fixedNow.AddDate(0, 0, -daysAgo),
		PartsReplaced:   partsReplaced,
		OdometerReading: odometerKM,
	}
}

func TestPredictMaintenanceReturnsAllComponents(t *testing.T) {
	mp := NewMaintenancePredictor()

	predictions, err := mp.PredictMaintenance(12000, nil, fixedNow)
	require.NoError(t, err)

	require.Len(t, predictions, 12)
	seen := map[string]bool{}
	for _, p := range predictions {
		seen[p.Component] = true
	}
	assert.Len(t, seen, 12, "every tracked component appears exactly once")
	assert.Contains(t, seen, "Engine Oil")
	assert.Contains(t, seen, "Brake Pads Front")
	assert.Contains(t, seen, "Chain Lubrication")
}

func TestPredictMaintenanceSortedByUrgency(t *testing.T) {
	mp := NewMaintenancePredictor()

	history := []models.MaintenanceRecord{
		serviceRecord(30, "engine_oil, oil_filter", 21000),
		serviceRecord(200, "tyres, brake_pads_front", 8000),
	}

	predictions, err := mp.PredictMaintenance(22500, history, fixedNow)
	require.NoError(t, err)

	for i := 1; i < len(predictions); i++ {
		assert.GreaterOrEqual(t, predictions[i-1].Urgency, predictions[i].Urgency)
	}
	for _, p := range predictions {
		assert.Contains(t, []int{25, 50, 75, 90, 100}, p.Urgency, "component %s", p.Component)
	}
}

func TestPredictMaintenanceStableTieOrder(t *testing.T) {
	mp := NewMaintenancePredictor()

	// With a fresh odometer every component ties at urgency 25, so the
	// fixed component-table order must be preserved.
	predictions, err := mp.PredictMaintenance(0, nil, fixedNow)
	require.NoError(t, err)

	require.Len(t, predictions, 12)
	assert.Equal(t, "Engine Oil", predictions[0].Component)
	assert.Equal(t, "Oil Filter", predictions[1].Component)
	assert.Equal(t, "Battery", predictions[11].Component)
}

func TestPredictMaintenanceOverdueBoundary(t *testing.T) {
	mp := NewMaintenancePredictor()

	// Engine oil serviced at 2000 km, odometer at 5000 km: exactly one
	// 3000 km interval since service. >=100% is inclusive, so overdue.
	history := []models.MaintenanceRecord{
		serviceRecord(90, "engine_oil", 2000),
	}

	predictions, err := mp.PredictMaintenance(5000, history, fixedNow)
	require.NoError(t, err)

	oil := findPrediction(t, predictions, "Engine Oil")
	assert.Equal(t, 2000, oil.LastServiceKM)
	assert.Equal(t, 3000, oil.KMSinceService)
	assert.Equal(t, 0, oil.KMUntilService)
	assert.Equal(t, 100, oil.Urgency)
	assert.Equal(t, "overdue", oil.Status)
	assert.Equal(t, 0, oil.DaysUntilService)
	assert.Equal(t, "2025-06-01", oil.DueDate)
}

func TestPredictMaintenanceUrgencyBands(t *testing.T) {
	mp := NewMaintenancePredictor()

	// Battery interval is 30000 km; with no history km_since equals the
	// odometer reading directly.
	cases := []struct {
		currentKM int
		urgency   int
		status    string
	}{
		{1000, 25, "low"},
		{15000, 50, "medium"},
		{22500, 75, "high"},
		{27000, 90, "critical"},
		{31000, 100, "overdue"},
	}

	for _, tc := range cases {
		predictions, err := mp.PredictMaintenance(tc.currentKM, nil, fixedNow)
		require.NoError(t, err)
		battery := findPrediction(t, predictions, "Battery")
		assert.Equal(t, tc.urgency, battery.Urgency, "current_km=%d", tc.currentKM)
		assert.Equal(t, tc.status, battery.Status, "current_km=%d", tc.currentKM)
	}
}

func TestPredictMaintenanceUsesMostRecentMatchingRecord(t *testing.T) {
	mp := NewMaintenancePredictor()

	// Two oil changes on record; the newer one wins regardless of slice
	// order, and matching is case-insensitive against the free text.
	history := []models.MaintenanceRecord{
		serviceRecord(300, "Engine_Oil and chassis check", 6000),
		serviceRecord(20, "ENGINE_OIL top-up", 11800),
	}

	predictions, err := mp.PredictMaintenance(12000, history, fixedNow)
	require.NoError(t, err)

	oil := findPrediction(t, predictions, "Engine Oil")
	assert.Equal(t, 11800, oil.LastServiceKM)
	assert.Equal(t, 200, oil.KMSinceService)
}

func TestPredictMaintenanceHistoryWindow(t *testing.T) {
	mp := NewMaintenancePredictor()

	// A battery swap older than the 20 most recent records is invisible,
	// so the battery falls back to last_service_km = 0.
	history := []models.MaintenanceRecord{serviceRecord(500, "battery", 5000)}
	for i := 0; i < 20; i++ {
		history = append(history, serviceRecord(10+i, "chain_lubrication", 28000-i*100))
	}

	predictions, err := mp.PredictMaintenance(29000, history, fixedNow)
	require.NoError(t, err)

	battery := findPrediction(t, predictions, "Battery")
	assert.Equal(t, 0, battery.LastServiceKM)
}

func TestPredictMaintenanceDueDateProjection(t *testing.T) {
	mp := NewMaintenancePredictor()

	// Fresh battery at 0 km on a 30000 km interval: 30000/30 = 1000 days.
	predictions, err := mp.PredictMaintenance(0, nil, fixedNow)
	require.NoError(t, err)

	battery := findPrediction(t, predictions, "Battery")
	assert.Equal(t, 1000, battery.DaysUntilService)
	assert.Equal(t, fixedNow.AddDate(0, 0, 1000).Format("2006-01-02"), battery.DueDate)
}

func TestPredictMaintenanceRejectsNegativeKM(t *testing.T) {
	mp := NewMaintenancePredictor()

	_, err := mp.PredictMaintenance(-1, nil, fixedNow)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPredictNextMajorService(t *testing.T) {
	mp := NewMaintenancePredictor()

	specs := &models.BikeSpec{EngineCC: 650}
	forecast, err := mp.PredictNextMajorService(14500, specs, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, 18000, forecast.NextServiceKM)
	assert.Equal(t, 3500, forecast.KMRemaining)
	assert.Equal(t, 5000.0, forecast.EstimatedCost) // 2000 * 2.5 for >600cc
	// 3500 km / 30 km per day = 116 days out.
	assert.Equal(t, fixedNow.AddDate(0, 0, 116).Format("2006-01-02"), forecast.EstimatedDate)
}

func TestPredictNextMajorServiceAtBoundary(t *testing.T) {
	mp := NewMaintenancePredictor()

	// Exactly on a 6000 km multiple the next boundary is a full interval
	// away, matching the established forecast behavior.
	forecast, err := mp.PredictNextMajorService(12000, nil, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, 18000, forecast.NextServiceKM)
	assert.Equal(t, 6000, forecast.KMRemaining)
	assert.Equal(t, 2000.0, forecast.EstimatedCost) // base cost without specs
}

func TestPredictNextMajorServiceCostBands(t *testing.T) {
	mp := NewMaintenancePredictor()

	cases := []struct {
		engineCC int
		expected float64
	}{
		{150, 2000},
		{300, 3000},
		{450, 4000},
		{700, 5000},
	}

	for _, tc := range cases {
		forecast, err := mp.PredictNextMajorService(1000, &models.BikeSpec{EngineCC: tc.engineCC}, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, forecast.EstimatedCost, "engine_cc=%d", tc.engineCC)
	}
}

func findPrediction(t *testing.T, predictions []MaintenancePrediction, component string) MaintenancePrediction {
	t.Helper()
	for _, p := range predictions {
		if p.Component == component {
			return p
		}
	}
	t.Fatalf("component %s not found in predictions", component)
	return MaintenancePrediction{}
}
