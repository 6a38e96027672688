// File: /utils/validators.go
package utils

var (
	roadTypes     = map[string]bool{"city": true, "highway": true, "track": true}
	weathers      = map[string]bool{"sunny": true, "rainy": true, "cloudy": true, "foggy": true, "hot": true, "cold": true}
	ridingStyles  = map[string]bool{"smooth": true, "moderate": true, "aggressive": true}
	conditions    = map[string]bool{"excellent": true, "good": true, "fair": true, "poor": true}
	experiences   = map[string]bool{"beginner": true, "intermediate": true, "expert": true}
	incidentTypes = map[string]bool{"accident": true, "breakdown": true, "theft": true, "vandalism": true}
	severities    = map[string]bool{"minor": true, "moderate": true, "severe": true}
)

func IsValidRoadType(roadType string) bool {
	return roadTypes[roadType]
}

func IsValidWeather(weather string) bool {
	return weathers[weather]
}

func IsValidRidingStyle(style string) bool {
	return ridingStyles[style]
}

func IsValidBikeCondition(condition string) bool {
	return conditions[condition]
}

func IsValidExperience(experience string) bool {
	return experiences[experience]
}

func IsValidIncidentType(incidentType string) bool {
	return incidentTypes[incidentType]
}

func IsValidSeverity(severity string) bool {
	return severities[severity]
}

func IsValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
