// File: /services/maintenance_predictor.go
package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"motogarage-api/models"
)

type componentInterval struct {
	name     string
	interval int // km
}

// Standard maintenance intervals. Order here is the tie-break order when
// two components share the same urgency.
var maintenanceIntervals = []componentInterval{
	{"engine_oil", 3000},
	{"oil_filter", 3000},
	{"air_filter", 6000},
	{"spark_plug", 8000},
	{"chain_lubrication", 500},
	{"chain_replacement", 15000},
	{"brake_pads_front", 12000},
	{"brake_pads_rear", 15000},
	{"brake_fluid", 8000},
	{"coolant", 10000},
	{"tyres", 20000},
	{"battery", 30000},
}

const (
	avgDailyKM           = 30   // assumed daily usage for due-date projection
	majorServiceInterval = 6000 // km
	historyWindow        = 20   // most recent records considered per bike
)

type MaintenancePrediction struct {
	Component        string `json:"component"`
	LastServiceKM    int    `json:"last_service_km"`
	CurrentKM        int    `json:"current_km"`
	KMSinceService   int    `json:"km_since_service"`
	KMUntilService   int    `json:"km_until_service"`
	DaysUntilService int    `json:"days_until_service"`
	DueDate          string `json:"due_date"`
	Urgency          int    `json:"urgency"`
	Status           string `json:"status"`
}

type MajorServiceForecast struct {
	NextServiceKM int     `json:"next_service_km"`
	KMRemaining   int     `json:"km_remaining"`
	EstimatedCost float64 `json:"estimated_cost"`
	EstimatedDate string  `json:"estimated_date"`
}

// MaintenancePredictor estimates per-component service schedules from fixed
// km intervals and the bike's maintenance history.
type MaintenancePredictor struct{}

func NewMaintenancePredictor() *MaintenancePredictor {
	return &MaintenancePredictor{}
}

// PredictMaintenance returns one prediction per tracked component, most
// urgent first. Only the most recent 20 history records (by service date)
// are consulted; a component never found in them counts as serviced at 0 km.
func (mp *MaintenancePredictor) PredictMaintenance(currentKM int, history []models.MaintenanceRecord, now time.Time) ([]MaintenancePrediction, error) {
	if currentKM < 0 {
		return nil, fmt.Errorf("current km must not be negative: %w", ErrInvalidInput)
	}

	records := recentRecords(history)
	predictions := make([]MaintenancePrediction, 0, len(maintenanceIntervals))

	for _, ci := range maintenanceIntervals {
		lastServiceKM := lastServiceKM(ci.name, records)
		kmSinceService := currentKM - lastServiceKM
		kmUntilService := ci.interval - kmSinceService

		urgency := calculateUrgency(kmSinceService, ci.interval)

		daysUntilService := 0
		if kmUntilService > 0 {
			daysUntilService = kmUntilService / avgDailyKM
		}
		dueDate := now.AddDate(0, 0, daysUntilService)

		predictions = append(predictions, MaintenancePrediction{
			Component:        componentTitle(ci.name),
			LastServiceKM:    lastServiceKM,
			CurrentKM:        currentKM,
			KMSinceService:   kmSinceService,
			KMUntilService:   max(0, kmUntilService),
			DaysUntilService: daysUntilService,
			DueDate:          dueDate.Format("2006-01-02"),
			Urgency:          urgency,
			Status:           urgencyStatus(urgency),
		})
	}

	// Stable sort keeps the interval-table order for equal urgencies.
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Urgency > predictions[j].Urgency
	})

	return predictions, nil
}

// PredictNextMajorService forecasts the next 6000 km service boundary.
func (mp *MaintenancePredictor) PredictNextMajorService(currentKM int, specs *models.BikeSpec, now time.Time) (*MajorServiceForecast, error) {
	if currentKM < 0 {
		return nil, fmt.Errorf("current km must not be negative: %w", ErrInvalidInput)
	}

	lastMajorService := (currentKM / majorServiceInterval) * majorServiceInterval
	nextMajorService := lastMajorService + majorServiceInterval
	kmRemaining := nextMajorService - currentKM

	return &MajorServiceForecast{
		NextServiceKM: nextMajorService,
		KMRemaining:   kmRemaining,
		EstimatedCost: estimateServiceCost(specs),
		EstimatedDate: now.AddDate(0, 0, kmRemaining/avgDailyKM).Format("2006-01-02"),
	}, nil
}

// recentRecords returns the newest historyWindow records, newest first.
func recentRecords(history []models.MaintenanceRecord) []models.MaintenanceRecord {
	records := make([]models.MaintenanceRecord, len(history))
	copy(records, history)

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ServiceDate.After(records[j].ServiceDate)
	})

	if len(records) > historyWindow {
		records = records[:historyWindow]
	}
	return records
}

func lastServiceKM(component string, records []models.MaintenanceRecord) int {
	for _, record := range records {
		if record.PartsReplaced != "" && strings.Contains(strings.ToLower(record.PartsReplaced), component) {
			return record.OdometerReading
		}
	}
	return 0
}

// calculateUrgency bands how overdue a component is into {25,50,75,90,100}.
func calculateUrgency(kmSinceService, interval int) int {
	percentage := float64(kmSinceService) / float64(interval) * 100

	switch {
	case percentage >= 100:
		return 100 // overdue
	case percentage >= 90:
		return 90 // critical
	case percentage >= 75:
		return 75 // high
	case percentage >= 50:
		return 50 // medium
	default:
		return 25 // low
	}
}

func urgencyStatus(urgency int) string {
	switch {
	case urgency >= 100:
		return "overdue"
	case urgency >= 90:
		return "critical"
	case urgency >= 75:
		return "high"
	case urgency >= 50:
		return "medium"
	default:
		return "low"
	}
}

func estimateServiceCost(specs *models.BikeSpec) float64 {
	baseCost := 2000.0

	if specs != nil && specs.EngineCC > 0 {
		switch {
		case specs.EngineCC > 600:
			baseCost *= 2.5
		case specs.EngineCC > 400:
			baseCost *= 2.0
		case specs.EngineCC > 250:
			baseCost *= 1.5
		}
	}

	return baseCost
}

// componentTitle turns "brake_pads_front" into "Brake Pads Front".
func componentTitle(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
