// File: /controllers/maintenance_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"motogarage-api/models"
	"motogarage-api/repositories"
	"motogarage-api/services"
)

type MaintenanceController struct {
	db              *gorm.DB
	maintenanceRepo *repositories.MaintenanceRepository
	predictor       *services.MaintenancePredictor
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{
		db:              db,
		maintenanceRepo: repositories.NewMaintenanceRepository(db),
		predictor:       services.NewMaintenancePredictor(),
	}
}

type CreateMaintenanceRequest struct {
	MaintenanceType string  `json:"maintenance_type" binding:"required"`
	ServiceDate     string  `json:"service_date" binding:"required"` // YYYY-MM-DD
	OdometerReading int     `json:"odometer_reading" binding:"required"`
	Description     string  `json:"description"`
	PartsReplaced   string  `json:"parts_replaced"`
	Cost            float64 `json:"cost"`
	ServiceCenter   string  `json:"service_center"`
}

// GetMaintenanceSchedule returns the per-component service predictions for
// a user bike, most urgent first.
func (mc *MaintenanceController) GetMaintenanceSchedule(c *gin.Context) {
	userBike, err := mc.maintenanceRepo.GetUserBike(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User bike not found"})
		return
	}

	history, err := mc.maintenanceRepo.GetRecentRecords(userBike.ID, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch maintenance history"})
		return
	}

	predictions, err := mc.predictor.PredictMaintenance(userBike.CurrentKM, history, time.Now())
	if err != nil {
		sendCalculatorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current_km":  userBike.CurrentKM,
		"predictions": predictions,
	})
}

func (mc *MaintenanceController) GetNextMajorService(c *gin.Context) {
	userBike, err := mc.maintenanceRepo.GetUserBike(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User bike not found"})
		return
	}

	forecast, err := mc.predictor.PredictNextMajorService(userBike.CurrentKM, userBike.Bike.Specs, time.Now())
	if err != nil {
		sendCalculatorError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}

func (mc *MaintenanceController) CreateMaintenanceRecord(c *gin.Context) {
	var req CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serviceDate, err := time.Parse("2006-01-02", req.ServiceDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_date must be formatted YYYY-MM-DD"})
		return
	}
	if req.OdometerReading < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "odometer_reading must not be negative"})
		return
	}

	userBike, err := mc.maintenanceRepo.GetUserBike(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User bike not found"})
		return
	}

	record := models.MaintenanceRecord{
		ID:              uuid.New().String(),
		UserBikeID:      userBike.ID,
		MaintenanceType: req.MaintenanceType,
		ServiceDate:     serviceDate,
		OdometerReading: req.OdometerReading,
		Description:     req.Description,
		PartsReplaced:   req.PartsReplaced,
		Cost:            req.Cost,
		ServiceCenter:   req.ServiceCenter,
	}

	if err := mc.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save maintenance record"})
		return
	}

	c.JSON(http.StatusCreated, record)
}
