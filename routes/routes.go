// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motogarage-api/controllers"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	bikeController := controllers.NewBikeController(db)
	ownershipController := controllers.NewOwnershipController(db)
	simulatorController := controllers.NewSimulatorController(db)
	maintenanceController := controllers.NewMaintenanceController(db)
	safetyController := controllers.NewSafetyController(db)
	garageController := controllers.NewGarageController(db)
	reviewController := controllers.NewReviewController(db)

	// Health check endpoint
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Bike catalog and estimators
		bikes := v1.Group("/bikes")
		{
			bikes.GET("", bikeController.GetBikes)
			bikes.GET("/:id", bikeController.GetBike)
			bikes.POST("/compare", bikeController.CompareBikes)
			bikes.POST("/:id/ownership-cost", ownershipController.CalculateOwnershipCost)
			bikes.POST("/:id/resale-value", ownershipController.PredictResaleValue)
			bikes.POST("/:id/simulate", simulatorController.SimulatePerformance)
			bikes.POST("/:id/safety-tips", safetyController.GetSafetyTips)
			bikes.GET("/:id/reviews", reviewController.GetReviews)
			bikes.POST("/:id/reviews", reviewController.CreateReview)
		}

		// Owned bikes and their logs
		garage := v1.Group("/garage")
		{
			garage.POST("", garageController.RegisterUserBike)
			garage.GET("/:id", garageController.GetUserBike)
			garage.GET("/:id/maintenance-schedule", maintenanceController.GetMaintenanceSchedule)
			garage.GET("/:id/next-major-service", maintenanceController.GetNextMajorService)
			garage.POST("/:id/maintenance", maintenanceController.CreateMaintenanceRecord)
			garage.GET("/:id/safety-alerts", safetyController.GetSafetyAlerts)
			garage.POST("/:id/rides", garageController.LogRide)
			garage.GET("/:id/rides", garageController.GetRides)
			garage.POST("/:id/accidents", garageController.CreateAccidentReport)
		}

		// Weather riding advice (no bike context needed)
		safety := v1.Group("/safety")
		{
			safety.GET("/weather-tips", safetyController.GetWeatherTips)
		}
	}
}
