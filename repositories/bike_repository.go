// File: /repositories/bike_repository.go
package repositories

import (
	"gorm.io/gorm"

	"motogarage-api/models"
)

type BikeRepository struct {
	db *gorm.DB
}

func NewBikeRepository(db *gorm.DB) *BikeRepository {
	return &BikeRepository{db: db}
}

// GetActiveBikes lists the catalog with specs attached, optionally filtered
// by category.
func (r *BikeRepository) GetActiveBikes(category string) ([]models.Bike, error) {
	query := r.db.Preload("Specs").Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var bikes []models.Bike
	if err := query.Order("brand, model").Find(&bikes).Error; err != nil {
		return nil, err
	}
	return bikes, nil
}

// GetBikeWithSpecs loads a single active bike and its spec sheet.
func (r *BikeRepository) GetBikeWithSpecs(bikeID string) (*models.Bike, error) {
	var bike models.Bike
	if err := r.db.Preload("Specs").First(&bike, "id = ? AND is_active = ?", bikeID, true).Error; err != nil {
		return nil, err
	}
	return &bike, nil
}

// GetBikesWithSpecs loads the given bikes, preserving request order.
func (r *BikeRepository) GetBikesWithSpecs(bikeIDs []string) ([]models.Bike, error) {
	var bikes []models.Bike
	if err := r.db.Preload("Specs").Where("id IN ? AND is_active = ?", bikeIDs, true).Find(&bikes).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.Bike, len(bikes))
	for _, bike := range bikes {
		byID[bike.ID] = bike
	}

	ordered := make([]models.Bike, 0, len(bikes))
	for _, id := range bikeIDs {
		if bike, ok := byID[id]; ok {
			ordered = append(ordered, bike)
		}
	}
	return ordered, nil
}
