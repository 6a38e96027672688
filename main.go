// File: /main.go
package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"motogarage-api/config"
	"motogarage-api/database"
	"motogarage-api/jobs"
	"motogarage-api/middleware"
	"motogarage-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with catalog data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Middleware stack
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ValidateJSON())
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst))

	// Setup routes
	routes.SetupRoutes(router, db)

	// Start background service reminder scan
	reminderJob := jobs.NewServiceReminderJob(db, 24*time.Hour)
	reminderJob.Start()
	defer reminderJob.Stop()

	// Start server
	log.Printf("Starting MotoGarage API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
