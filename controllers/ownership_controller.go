// File: /controllers/ownership_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motogarage-api/repositories"
	"motogarage-api/services"
	"motogarage-api/utils"
)

// OwnershipController exposes the cost-of-ownership and resale estimators.
type OwnershipController struct {
	bikeRepo *repositories.BikeRepository
	cost     *services.CostCalculator
	resale   *services.ResalePredictor
}

func NewOwnershipController(db *gorm.DB) *OwnershipController {
	return &OwnershipController{
		bikeRepo: repositories.NewBikeRepository(db),
		cost:     services.NewCostCalculator(),
		resale:   services.NewResalePredictor(),
	}
}

type OwnershipCostRequest struct {
	YearlyKM      float64 `json:"yearly_km" binding:"required"`
	FuelPrice     float64 `json:"fuel_price" binding:"required"`
	InsuranceType string  `json:"insurance_type"`
}

type ResaleValueRequest struct {
	PurchasePrice float64 `json:"purchase_price" binding:"required"`
	YearsOld      int     `json:"years_old"`
	KMDriven      int     `json:"km_driven"`
	Condition     string  `json:"condition" binding:"required"`
}

func (oc *OwnershipController) CalculateOwnershipCost(c *gin.Context) {
	var req OwnershipCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bike, err := oc.bikeRepo.GetBikeWithSpecs(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
		return
	}

	insuranceType := req.InsuranceType
	if insuranceType == "" {
		insuranceType = "comprehensive"
	}

	result, err := oc.cost.CalculateOwnershipCost(bike.Specs, bike.Price, req.YearlyKM, req.FuelPrice, insuranceType)
	if err != nil {
		sendCalculatorError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (oc *OwnershipController) PredictResaleValue(c *gin.Context) {
	var req ResaleValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidBikeCondition(req.Condition) {
		utils.SendValidationError(c, "condition must be one of excellent, good, fair, poor")
		return
	}

	bike, err := oc.bikeRepo.GetBikeWithSpecs(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
		return
	}

	result, err := oc.resale.PredictResaleValue(bike.Brand, req.PurchasePrice, req.YearsOld, req.KMDriven, req.Condition)
	if err != nil {
		sendCalculatorError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// sendCalculatorError maps estimation errors onto HTTP statuses: missing
// spec data is 422, caller mistakes are 400.
func sendCalculatorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingSpec):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Calculation failed"})
	}
}
