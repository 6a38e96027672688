// File: /controllers/simulator_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motogarage-api/repositories"
	"motogarage-api/services"
	"motogarage-api/utils"
)

type SimulatorController struct {
	bikeRepo  *repositories.BikeRepository
	simulator *services.PerformanceSimulator
}

func NewSimulatorController(db *gorm.DB) *SimulatorController {
	return &SimulatorController{
		bikeRepo:  repositories.NewBikeRepository(db),
		simulator: services.NewPerformanceSimulator(),
	}
}

type SimulateRequest struct {
	RiderWeight float64 `json:"rider_weight"`
	RoadType    string  `json:"road_type"`
	Weather     string  `json:"weather"`
	RidingStyle string  `json:"riding_style"`
}

// SimulatePerformance runs the condition simulator for a catalog bike.
// Unset fields fall back to a 70 kg rider on a sunny city commute.
func (sc *SimulatorController) SimulatePerformance(c *gin.Context) {
	req := SimulateRequest{
		RiderWeight: 70,
		RoadType:    "city",
		Weather:     "sunny",
		RidingStyle: "moderate",
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidRoadType(req.RoadType) {
		utils.SendValidationError(c, "road_type must be one of city, highway, track")
		return
	}
	if !utils.IsValidWeather(req.Weather) {
		utils.SendValidationError(c, "weather must be one of sunny, rainy, cloudy, foggy, hot, cold")
		return
	}
	if !utils.IsValidRidingStyle(req.RidingStyle) {
		utils.SendValidationError(c, "riding_style must be one of smooth, moderate, aggressive")
		return
	}

	bike, err := sc.bikeRepo.GetBikeWithSpecs(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
		return
	}

	result, err := sc.simulator.SimulatePerformance(bike.Specs, req.RiderWeight, req.RoadType, req.Weather, req.RidingStyle)
	if err != nil {
		sendCalculatorError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
