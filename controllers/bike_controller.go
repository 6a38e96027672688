// File: /controllers/bike_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motogarage-api/repositories"
	"motogarage-api/services"
)

type BikeController struct {
	bikeRepo   *repositories.BikeRepository
	comparison *services.ComparisonEngine
}

func NewBikeController(db *gorm.DB) *BikeController {
	return &BikeController{
		bikeRepo:   repositories.NewBikeRepository(db),
		comparison: services.NewComparisonEngine(),
	}
}

type CompareBikesRequest struct {
	BikeIDs []string `json:"bike_ids" binding:"required,min=2,max=5"`
}

func (bc *BikeController) GetBikes(c *gin.Context) {
	bikes, err := bc.bikeRepo.GetActiveBikes(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bikes"})
		return
	}

	c.JSON(http.StatusOK, bikes)
}

func (bc *BikeController) GetBike(c *gin.Context) {
	bike, err := bc.bikeRepo.GetBikeWithSpecs(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
		return
	}

	c.JSON(http.StatusOK, bike)
}

func (bc *BikeController) CompareBikes(c *gin.Context) {
	var req CompareBikesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bikes, err := bc.bikeRepo.GetBikesWithSpecs(req.BikeIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bikes"})
		return
	}
	if len(bikes) < 2 {
		c.JSON(http.StatusNotFound, gin.H{"error": "At least two of the requested bikes must exist"})
		return
	}

	c.JSON(http.StatusOK, bc.comparison.CompareBikes(bikes))
}
