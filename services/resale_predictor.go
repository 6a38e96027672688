// File: /services/resale_predictor.go
package services

import (
	"fmt"
	"strings"
)

// Resale multipliers by reported bike condition.
var conditionMultiplier = map[string]float64{
	"excellent": 0.85,
	"good":      0.75,
	"fair":      0.60,
	"poor":      0.40,
}

const defaultConditionFactor = 0.70

var (
	premiumBrands = []string{"KTM", "BMW", "KAWASAKI", "YAMAHA", "DUCATI"}
	goodBrands    = []string{"HONDA", "SUZUKI", "ROYAL ENFIELD"}
)

type ResaleFactors struct {
	AgeFactor       float64 `json:"age_factor"`
	KMFactor        float64 `json:"km_factor"`
	ConditionFactor float64 `json:"condition_factor"`
	BrandFactor     float64 `json:"brand_factor"`
}

type MarketAnalysis struct {
	DemandLevel    string `json:"demand_level"`
	Description    string `json:"description"`
	BestTimeToSell string `json:"best_time_to_sell"`
}

type ResalePrediction struct {
	PredictedValue         float64        `json:"predicted_value"`
	PurchasePrice          float64        `json:"purchase_price"`
	TotalDepreciation      float64        `json:"total_depreciation"`
	DepreciationPercentage float64        `json:"depreciation_percentage"`
	Factors                ResaleFactors  `json:"factors"`
	MarketAnalysis         MarketAnalysis `json:"market_analysis"`
	SellingTips            []string       `json:"selling_tips"`
}

// ResalePredictor estimates a used bike's value from its depreciation curve.
type ResalePredictor struct{}

func NewResalePredictor() *ResalePredictor {
	return &ResalePredictor{}
}

// PredictResaleValue multiplies the purchase price by age, km, condition and
// brand retention factors. The age factor goes negative past roughly 8
// years; that tail is preserved unclamped since downstream consumers read
// the raw curve.
func (rp *ResalePredictor) PredictResaleValue(brand string, purchasePrice float64, yearsOld, kmDriven int, condition string) (*ResalePrediction, error) {
	if purchasePrice <= 0 {
		return nil, fmt.Errorf("purchase price must be positive: %w", ErrInvalidInput)
	}
	if yearsOld < 0 {
		return nil, fmt.Errorf("age must not be negative: %w", ErrInvalidInput)
	}
	if kmDriven < 0 {
		return nil, fmt.Errorf("km driven must not be negative: %w", ErrInvalidInput)
	}

	// 15% per year for the first 3 years, 10% per year after that.
	var ageDepreciation float64
	if yearsOld <= 3 {
		ageDepreciation = 1 - 0.15*float64(yearsOld)
	} else {
		ageDepreciation = 0.55 - 0.10*float64(yearsOld-3)
	}

	kmFactor := kmFactor(kmDriven, yearsOld)

	conditionFactor, ok := conditionMultiplier[condition]
	if !ok {
		conditionFactor = defaultConditionFactor
	}

	brandFactor := brandFactor(brand)

	predictedValue := purchasePrice * ageDepreciation * kmFactor * conditionFactor * brandFactor
	totalDepreciation := purchasePrice - predictedValue

	return &ResalePrediction{
		PredictedValue:         round2(predictedValue),
		PurchasePrice:          purchasePrice,
		TotalDepreciation:      round2(totalDepreciation),
		DepreciationPercentage: round2(totalDepreciation / purchasePrice * 100),
		Factors: ResaleFactors{
			AgeFactor:       round2(ageDepreciation * 100),
			KMFactor:        round2(kmFactor * 100),
			ConditionFactor: round2(conditionFactor * 100),
			BrandFactor:     round2(brandFactor * 100),
		},
		MarketAnalysis: analyzeMarketDemand(yearsOld),
		SellingTips:    sellingTips(condition, yearsOld),
	}, nil
}

func kmFactor(kmDriven, yearsOld int) float64 {
	avgKMPerYear := float64(kmDriven)
	if yearsOld > 0 {
		avgKMPerYear = float64(kmDriven) / float64(yearsOld)
	}

	switch {
	case avgKMPerYear < 5000:
		return 0.95 // low usage, better value
	case avgKMPerYear < 10000:
		return 0.90 // normal usage
	case avgKMPerYear < 15000:
		return 0.80 // high usage
	default:
		return 0.70 // very high usage
	}
}

func brandFactor(brand string) float64 {
	brandUpper := strings.ToUpper(brand)

	for _, premium := range premiumBrands {
		if strings.Contains(brandUpper, premium) {
			return 1.1 // premium brands hold value better
		}
	}
	for _, good := range goodBrands {
		if strings.Contains(brandUpper, good) {
			return 1.0
		}
	}
	return 0.9
}

func analyzeMarketDemand(yearsOld int) MarketAnalysis {
	var demand, description string
	switch {
	case yearsOld <= 2:
		demand = "high"
		description = "Recent model with high demand"
	case yearsOld <= 5:
		demand = "medium"
		description = "Good demand in used bike market"
	default:
		demand = "low"
		description = "Older model, limited buyers"
	}

	bestTime := "Year-round"
	if yearsOld <= 3 {
		bestTime = "March-April"
	}

	return MarketAnalysis{
		DemandLevel:    demand,
		Description:    description,
		BestTimeToSell: bestTime,
	}
}

func sellingTips(condition string, yearsOld int) []string {
	tips := []string{
		"Complete all pending maintenance",
		"Clean and detail the bike professionally",
		"Keep all service records ready",
		"Take high-quality photos",
	}

	if condition == "fair" || condition == "poor" {
		tips = append(tips,
			"Consider minor repairs to improve condition",
			"Be transparent about issues",
		)
	}

	if yearsOld > 5 {
		tips = append(tips,
			"Highlight any upgrades or modifications",
			"Emphasize low running costs",
		)
	}

	return tips
}
