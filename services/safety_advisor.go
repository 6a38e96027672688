// File: /services/safety_advisor.go
package services

import (
	"fmt"

	"motogarage-api/models"
)

type SafetyTips struct {
	General         []string `json:"general"`
	BikeSpecific    []string `json:"bike_specific"`
	ExperienceBased []string `json:"experience_based"`
	ConditionAlerts []string `json:"condition_alerts"`
}

type SafetyAlert struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

var generalSafetyTips = []string{
	"Always wear a DOT-approved helmet",
	"Check tyre pressure before every ride",
	"Use both brakes progressively for better control",
	"Maintain safe following distance",
	"Be visible - use headlights during day",
}

var experienceTips = map[string][]string{
	"beginner": {
		"Take a professional riding course",
		"Start with empty parking lots for practice",
		"Avoid riding in heavy traffic initially",
		"Practice slow-speed maneuvers regularly",
		"Don't ride beyond your skill level",
	},
	"intermediate": {
		"Practice advanced cornering techniques",
		"Learn proper body positioning",
		"Master trail braking on track",
		"Develop situational awareness",
		"Consider track day for skill improvement",
	},
	"expert": {
		"Mentor new riders when possible",
		"Keep skills sharp with regular practice",
		"Stay updated on latest safety technology",
		"Share knowledge with community",
		"Lead by example in safe riding",
	},
}

var weatherRidingTips = map[string][]string{
	"rainy": {
		"Reduce speed by 20-30%",
		"Increase following distance significantly",
		"Avoid painted road markings (slippery)",
		"Use both brakes gently",
		"Avoid sudden movements",
		"Watch for oil slicks and standing water",
	},
	"sunny": {
		"Stay hydrated - carry water",
		"Use sunglasses or tinted visor",
		"Watch for heat exhaustion symptoms",
		"Tyre pressure increases in heat",
	},
	"cold": {
		"Warm up bike longer",
		"Dress in layers",
		"Tyres take longer to warm up",
		"Watch for ice in shaded areas",
	},
	"foggy": {
		"Use low beam headlights",
		"Reduce speed significantly",
		"Use road edges as guide",
		"Increase following distance",
	},
}

// SafetyAdvisor generates rule-based safety tips and alerts.
type SafetyAdvisor struct{}

func NewSafetyAdvisor() *SafetyAdvisor {
	return &SafetyAdvisor{}
}

// GenerateSafetyTips builds the four tip categories for a rider/bike pair.
// It tolerates a missing spec record; the bike-specific category is simply
// empty then. An unrecognized experience level yields no extra tips.
func (sa *SafetyAdvisor) GenerateSafetyTips(specs *models.BikeSpec, riderExperience, bikeCondition string) *SafetyTips {
	tips := &SafetyTips{
		General:         generalSafetyTips,
		BikeSpecific:    []string{},
		ExperienceBased: []string{},
		ConditionAlerts: []string{},
	}

	if specs != nil {
		if specs.MaxPower > 50 {
			tips.BikeSpecific = append(tips.BikeSpecific,
				fmt.Sprintf("High-power bike (%gHP) - Throttle control is crucial", specs.MaxPower),
				"Practice emergency braking in safe environment",
			)
		}
		if specs.TopSpeed > 180 {
			tips.BikeSpecific = append(tips.BikeSpecific,
				"High-speed capability - Always respect speed limits",
				"Aerodynamic tuck reduces wind resistance at high speeds",
			)
		}
		if specs.SeatHeight > 800 {
			tips.BikeSpecific = append(tips.BikeSpecific,
				fmt.Sprintf("Tall seat height (%gmm) - Practice low-speed maneuvers", specs.SeatHeight),
			)
		}
	}

	if extra, ok := experienceTips[riderExperience]; ok {
		tips.ExperienceBased = extra
	}

	switch bikeCondition {
	case "poor":
		tips.ConditionAlerts = []string{
			"URGENT: Poor bike condition detected",
			"Schedule immediate inspection",
			"Avoid long rides until serviced",
			"Check all critical systems before riding",
		}
	case "fair":
		tips.ConditionAlerts = []string{
			"Bike needs attention soon",
			"Schedule service within 1-2 weeks",
			"Monitor for unusual sounds or vibrations",
		}
	}

	return tips
}

// CheckSafetyAlerts derives alerts from the bike's odometer reading.
func (sa *SafetyAdvisor) CheckSafetyAlerts(currentKM int) []SafetyAlert {
	alerts := []SafetyAlert{}

	if currentKM > 50000 {
		alerts = append(alerts, SafetyAlert{
			Type:     "warning",
			Title:    "High Mileage Alert",
			Message:  fmt.Sprintf("%d km - Increase maintenance frequency", currentKM),
			Priority: "medium",
		})
	}

	// Within 100 km of a 3000 km service boundary.
	if currentKM%3000 < 100 {
		alerts = append(alerts, SafetyAlert{
			Type:     "info",
			Title:    "Service Due Soon",
			Message:  fmt.Sprintf("Next service due at %d km", (currentKM/3000+1)*3000),
			Priority: "low",
		})
	}

	alerts = append(alerts, SafetyAlert{
		Type:     "info",
		Title:    "Weather Advisory",
		Message:  "Check weather before long rides",
		Priority: "low",
	})

	return alerts
}

// RidingTipsByWeather returns weather-specific riding tips, defaulting to
// the sunny set for unknown conditions.
func (sa *SafetyAdvisor) RidingTipsByWeather(weather string) []string {
	if tips, ok := weatherRidingTips[weather]; ok {
		return tips
	}
	return weatherRidingTips["sunny"]
}
