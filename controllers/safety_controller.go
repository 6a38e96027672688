// File: /controllers/safety_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motogarage-api/repositories"
	"motogarage-api/services"
	"motogarage-api/utils"
)

type SafetyController struct {
	bikeRepo        *repositories.BikeRepository
	maintenanceRepo *repositories.MaintenanceRepository
	advisor         *services.SafetyAdvisor
}

func NewSafetyController(db *gorm.DB) *SafetyController {
	return &SafetyController{
		bikeRepo:        repositories.NewBikeRepository(db),
		maintenanceRepo: repositories.NewMaintenanceRepository(db),
		advisor:         services.NewSafetyAdvisor(),
	}
}

type SafetyTipsRequest struct {
	RiderExperience string `json:"rider_experience" binding:"required"`
	BikeCondition   string `json:"bike_condition" binding:"required"`
}

func (sc *SafetyController) GetSafetyTips(c *gin.Context) {
	var req SafetyTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidExperience(req.RiderExperience) {
		utils.SendValidationError(c, "rider_experience must be one of beginner, intermediate, expert")
		return
	}
	if !utils.IsValidBikeCondition(req.BikeCondition) {
		utils.SendValidationError(c, "bike_condition must be one of excellent, good, fair, poor")
		return
	}

	bike, err := sc.bikeRepo.GetBikeWithSpecs(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
		return
	}

	c.JSON(http.StatusOK, sc.advisor.GenerateSafetyTips(bike.Specs, req.RiderExperience, req.BikeCondition))
}

func (sc *SafetyController) GetSafetyAlerts(c *gin.Context) {
	userBike, err := sc.maintenanceRepo.GetUserBike(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User bike not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current_km": userBike.CurrentKM,
		"alerts":     sc.advisor.CheckSafetyAlerts(userBike.CurrentKM),
	})
}

func (sc *SafetyController) GetWeatherTips(c *gin.Context) {
	weather := c.DefaultQuery("weather", "sunny")

	c.JSON(http.StatusOK, gin.H{
		"weather": weather,
		"tips":    sc.advisor.RidingTipsByWeather(weather),
	})
}
