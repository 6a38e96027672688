// File: /controllers/garage_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"motogarage-api/models"
	"motogarage-api/utils"
)

// GarageController manages ownership records and the ride/incident logs
// that feed the estimators.
type GarageController struct {
	db *gorm.DB
}

func NewGarageController(db *gorm.DB) *GarageController {
	return &GarageController{db: db}
}

type RegisterUserBikeRequest struct {
	UserID             string  `json:"user_id" binding:"required"`
	BikeID             string  `json:"bike_id" binding:"required"`
	PurchaseDate       string  `json:"purchase_date"` // YYYY-MM-DD
	PurchasePrice      float64 `json:"purchase_price"`
	CurrentKM          int     `json:"current_km"`
	RegistrationNumber string  `json:"registration_number" binding:"required"`
	BikeCondition      string  `json:"bike_condition"`
}

type LogRideRequest struct {
	Distance         float64 `json:"distance" binding:"required,gt=0"`
	Duration         int     `json:"duration" binding:"required,gt=0"`
	AvgSpeed         float64 `json:"avg_speed"`
	MaxSpeed         float64 `json:"max_speed"`
	FuelConsumed     float64 `json:"fuel_consumed"`
	RoadType         string  `json:"road_type" binding:"required"`
	WeatherCondition string  `json:"weather_condition" binding:"required"`
	RidingStyle      string  `json:"riding_style" binding:"required"`
	StartLocation    string  `json:"start_location"`
	EndLocation      string  `json:"end_location"`
	Notes            string  `json:"notes"`
}

type AccidentReportRequest struct {
	IncidentType string  `json:"incident_type" binding:"required"`
	Severity     string  `json:"severity" binding:"required"`
	IncidentDate string  `json:"incident_date" binding:"required"` // YYYY-MM-DD
	Location     string  `json:"location"`
	Description  string  `json:"description"`
	RepairCost   float64 `json:"repair_cost"`
}

func (gc *GarageController) RegisterUserBike(c *gin.Context) {
	var req RegisterUserBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.CurrentKM < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current_km must not be negative"})
		return
	}

	condition := req.BikeCondition
	if condition == "" {
		condition = "good"
	}
	if !utils.IsValidBikeCondition(condition) {
		utils.SendValidationError(c, "bike_condition must be one of excellent, good, fair, poor")
		return
	}

	var bike models.Bike
	if err := gc.db.First(&bike, "id = ? AND is_active = ?", req.BikeID, true).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
		return
	}

	userBike := models.UserBike{
		ID:                 uuid.New().String(),
		UserID:             req.UserID,
		BikeID:             req.BikeID,
		PurchasePrice:      req.PurchasePrice,
		CurrentKM:          req.CurrentKM,
		RegistrationNumber: req.RegistrationNumber,
		BikeCondition:      condition,
		IsActive:           true,
	}

	if req.PurchaseDate != "" {
		purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "purchase_date must be formatted YYYY-MM-DD"})
			return
		}
		userBike.PurchaseDate = &purchaseDate
	}

	if err := gc.db.Create(&userBike).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register bike"})
		return
	}

	c.JSON(http.StatusCreated, userBike)
}

func (gc *GarageController) GetUserBike(c *gin.Context) {
	var userBike models.UserBike
	if err := gc.db.Preload("Bike").Preload("Bike.Specs").
		First(&userBike, "id = ? AND is_active = ?", c.Param("id"), true).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User bike not found"})
		return
	}

	c.JSON(http.StatusOK, userBike)
}

// LogRide records a ride and advances the odometer. The odometer never
// moves backwards; rides only add distance.
func (gc *GarageController) LogRide(c *gin.Context) {
	var req LogRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidRoadType(req.RoadType) {
		utils.SendValidationError(c, "road_type must be one of city, highway, track")
		return
	}
	if !utils.IsValidWeather(req.WeatherCondition) {
		utils.SendValidationError(c, "weather_condition must be one of sunny, rainy, cloudy, foggy, hot, cold")
		return
	}
	if !utils.IsValidRidingStyle(req.RidingStyle) {
		utils.SendValidationError(c, "riding_style must be one of smooth, moderate, aggressive")
		return
	}

	var userBike models.UserBike
	if err := gc.db.First(&userBike, "id = ? AND is_active = ?", c.Param("id"), true).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User bike not found"})
		return
	}

	ride := models.RideLog{
		ID:               uuid.New().String(),
		UserBikeID:       userBike.ID,
		RideDate:         time.Now(),
		Distance:         req.Distance,
		Duration:         req.Duration,
		AvgSpeed:         req.AvgSpeed,
		MaxSpeed:         req.MaxSpeed,
		FuelConsumed:     req.FuelConsumed,
		RoadType:         req.RoadType,
		WeatherCondition: req.WeatherCondition,
		RidingStyle:      req.RidingStyle,
		StartLocation:    req.StartLocation,
		EndLocation:      req.EndLocation,
		Notes:            req.Notes,
	}

	err := gc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ride).Error; err != nil {
			return err
		}
		return tx.Model(&userBike).
			Update("current_km", gorm.Expr("current_km + ?", int(req.Distance))).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log ride"})
		return
	}

	c.JSON(http.StatusCreated, ride)
}

func (gc *GarageController) GetRides(c *gin.Context) {
	var rides []models.RideLog
	if err := gc.db.Where("user_bike_id = ?", c.Param("id")).
		Order("ride_date DESC").Limit(50).Find(&rides).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rides"})
		return
	}

	c.JSON(http.StatusOK, rides)
}

func (gc *GarageController) CreateAccidentReport(c *gin.Context) {
	var req AccidentReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidIncidentType(req.IncidentType) {
		utils.SendValidationError(c, "incident_type must be one of accident, breakdown, theft, vandalism")
		return
	}
	if !utils.IsValidSeverity(req.Severity) {
		utils.SendValidationError(c, "severity must be one of minor, moderate, severe")
		return
	}

	incidentDate, err := time.Parse("2006-01-02", req.IncidentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incident_date must be formatted YYYY-MM-DD"})
		return
	}

	var userBike models.UserBike
	if err := gc.db.First(&userBike, "id = ? AND is_active = ?", c.Param("id"), true).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User bike not found"})
		return
	}

	report := models.AccidentReport{
		ID:           uuid.New().String(),
		UserBikeID:   userBike.ID,
		IncidentType: req.IncidentType,
		Severity:     req.Severity,
		IncidentDate: incidentDate,
		Location:     req.Location,
		Description:  req.Description,
		RepairCost:   req.RepairCost,
	}

	if err := gc.db.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to file accident report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}
