// File: /controllers/review_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"motogarage-api/models"
	"motogarage-api/utils"
)

type ReviewController struct {
	db *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

type CreateReviewRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Content       string `json:"content"`
	OwnershipKM   int    `json:"ownership_km"`
	OwnedDuration string `json:"owned_duration"`
}

func (rc *ReviewController) GetReviews(c *gin.Context) {
	var reviews []models.Review
	if err := rc.db.Preload("User").Where("bike_id = ?", c.Param("id")).
		Order("created_at DESC").Limit(50).Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidRating(req.Rating) {
		utils.SendValidationError(c, "rating must be between 1 and 5")
		return
	}

	var bike models.Bike
	if err := rc.db.First(&bike, "id = ? AND is_active = ?", c.Param("id"), true).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
		return
	}

	review := models.Review{
		ID:            uuid.New().String(),
		UserID:        req.UserID,
		BikeID:        bike.ID,
		Rating:        req.Rating,
		Title:         req.Title,
		Content:       req.Content,
		OwnershipKM:   req.OwnershipKM,
		OwnedDuration: req.OwnedDuration,
	}

	if err := rc.db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}
