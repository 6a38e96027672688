// File: /repositories/maintenance_repository.go
package repositories

import (
	"gorm.io/gorm"

	"motogarage-api/models"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// GetRecentRecords returns the newest maintenance records for a user bike,
// newest first. The predictor only ever looks at the last 20.
func (r *MaintenanceRepository) GetRecentRecords(userBikeID string, limit int) ([]models.MaintenanceRecord, error) {
	var records []models.MaintenanceRecord
	if err := r.db.Where("user_bike_id = ?", userBikeID).
		Order("service_date DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetUserBike loads an ownership record with the bike and its specs.
func (r *MaintenanceRepository) GetUserBike(userBikeID string) (*models.UserBike, error) {
	var userBike models.UserBike
	if err := r.db.Preload("Bike").Preload("Bike.Specs").
		First(&userBike, "id = ? AND is_active = ?", userBikeID, true).Error; err != nil {
		return nil, err
	}
	return &userBike, nil
}

// GetActiveUserBikes lists every active ownership record, used by the
// periodic service reminder scan.
func (r *MaintenanceRepository) GetActiveUserBikes() ([]models.UserBike, error) {
	var userBikes []models.UserBike
	if err := r.db.Preload("Bike").Where("is_active = ?", true).Find(&userBikes).Error; err != nil {
		return nil, err
	}
	return userBikes, nil
}
