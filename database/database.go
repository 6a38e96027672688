// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"motogarage-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.Bike{},
		&models.BikeSpec{},
		&models.UserBike{},
		&models.RideLog{},
		&models.MaintenanceRecord{},
		&models.Review{},
		&models.AccidentReport{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Add custom indexes for better performance
	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Maintenance history is always read newest-first per user bike
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_maintenance_records_bike_date ON maintenance_records(user_bike_id, service_date DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for maintenance_records: %v\n", err)
	}

	// Ride history listing
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_ride_logs_bike_date ON ride_logs(user_bike_id, ride_date DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for ride_logs: %v\n", err)
	}

	// Catalog browsing by category
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bikes_category_active ON bikes(category, is_active)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for bikes: %v\n", err)
	}

	// Reviews listing per bike
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_reviews_bike_created ON reviews(bike_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for reviews: %v\n", err)
	}

	return nil
}

// SeedData populates the catalog with a few well-known bikes so the
// estimators have something to work with in development.
func SeedData(db *gorm.DB) error {
	var bikeCount int64
	db.Model(&models.Bike{}).Count(&bikeCount)

	if bikeCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	seedBikes := []models.Bike{
		{
			ID:       "bike-r15v4",
			Brand:    "Yamaha",
			Model:    "R15 V4",
			Year:     2024,
			Category: "sport",
			Price:    185000,
			IsActive: true,
			Specs: &models.BikeSpec{
				ID:                 "spec-r15v4",
				BikeID:             "bike-r15v4",
				EngineCC:           155,
				EngineType:         "Liquid-cooled, 4-stroke, SOHC",
				MaxPower:           18.4,
				MaxPowerRPM:        10000,
				MaxTorque:          14.2,
				MaxTorqueRPM:       7500,
				FuelSystem:         "Fuel Injection",
				TopSpeed:           140,
				Acceleration0To100: 11.8,
				MileageCity:        40,
				MileageHighway:     48,
				Length:             1990,
				Width:              725,
				Height:             1135,
				Wheelbase:          1325,
				GroundClearance:    170,
				SeatHeight:         815,
				KerbWeight:         142,
				FuelCapacity:       11,
				FrontBrake:         "282mm disc, dual-channel ABS",
				RearBrake:          "220mm disc",
				FrontSuspension:    "USD telescopic fork",
				RearSuspension:     "Linked-type monocross",
				FrontTyre:          "100/80-17",
				RearTyre:           "140/70-17",
			},
		},
		{
			ID:       "bike-classic350",
			Brand:    "Royal Enfield",
			Model:    "Classic 350",
			Year:     2024,
			Category: "cruiser",
			Price:    193000,
			IsActive: true,
			Specs: &models.BikeSpec{
				ID:                 "spec-classic350",
				BikeID:             "bike-classic350",
				EngineCC:           349,
				EngineType:         "Air-oil cooled, 4-stroke, SOHC",
				MaxPower:           20.2,
				MaxPowerRPM:        6100,
				MaxTorque:          27,
				MaxTorqueRPM:       4000,
				FuelSystem:         "Fuel Injection",
				TopSpeed:           114,
				Acceleration0To100: 15.5,
				MileageCity:        32,
				MileageHighway:     38,
				Length:             2145,
				Width:              785,
				Height:             1090,
				Wheelbase:          1390,
				GroundClearance:    170,
				SeatHeight:         805,
				KerbWeight:         195,
				FuelCapacity:       13,
				FrontBrake:         "300mm disc, dual-channel ABS",
				RearBrake:          "270mm disc",
				FrontSuspension:    "41mm telescopic fork",
				RearSuspension:     "Twin shocks, 6-step preload",
				FrontTyre:          "100/90-19",
				RearTyre:           "120/80-18",
			},
		},
		{
			ID:       "bike-ninja650",
			Brand:    "Kawasaki",
			Model:    "Ninja 650",
			Year:     2024,
			Category: "sport",
			Price:    729000,
			IsActive: true,
			Specs: &models.BikeSpec{
				ID:                 "spec-ninja650",
				BikeID:             "bike-ninja650",
				EngineCC:           649,
				EngineType:         "Liquid-cooled, 4-stroke, parallel twin",
				MaxPower:           68,
				MaxPowerRPM:        8000,
				MaxTorque:          64,
				MaxTorqueRPM:       6700,
				FuelSystem:         "Fuel Injection",
				TopSpeed:           211,
				Acceleration0To100: 4.1,
				MileageCity:        19,
				MileageHighway:     25,
				Length:             2055,
				Width:              740,
				Height:             1145,
				Wheelbase:          1410,
				GroundClearance:    130,
				SeatHeight:         790,
				KerbWeight:         196,
				FuelCapacity:       15,
				FrontBrake:         "Dual 300mm discs, ABS",
				RearBrake:          "220mm disc",
				FrontSuspension:    "41mm telescopic fork",
				RearSuspension:     "Horizontal back-link monoshock",
				FrontTyre:          "120/70-17",
				RearTyre:           "160/60-17",
			},
		},
		{
			ID:       "bike-duke390",
			Brand:    "KTM",
			Model:    "390 Duke",
			Year:     2024,
			Category: "naked",
			Price:    311000,
			IsActive: true,
			Specs: &models.BikeSpec{
				ID:                 "spec-duke390",
				BikeID:             "bike-duke390",
				EngineCC:           399,
				EngineType:         "Liquid-cooled, 4-stroke, DOHC",
				MaxPower:           45.3,
				MaxPowerRPM:        8500,
				MaxTorque:          39,
				MaxTorqueRPM:       6500,
				FuelSystem:         "Fuel Injection",
				TopSpeed:           167,
				Acceleration0To100: 5.6,
				MileageCity:        26,
				MileageHighway:     32,
				Length:             2145,
				Width:              823,
				Height:             1083,
				Wheelbase:          1357,
				GroundClearance:    183,
				SeatHeight:         820,
				KerbWeight:         168,
				FuelCapacity:       15,
				FrontBrake:         "320mm disc, cornering ABS",
				RearBrake:          "240mm disc",
				FrontSuspension:    "WP APEX open cartridge USD fork",
				RearSuspension:     "WP APEX monoshock",
				FrontTyre:          "110/70-17",
				RearTyre:           "150/60-17",
			},
		},
	}

	for _, bike := range seedBikes {
		if err := db.Create(&bike).Error; err != nil {
			fmt.Printf("Warning: Could not create seed bike %s %s: %v\n", bike.Brand, bike.Model, err)
		}
	}

	fmt.Println("Database seeded with catalog bikes")
	return nil
}
