// File: /models/user.go
package models

import (
	"time"
)

// User is the ownership record calculators are keyed to. Credential and
// session handling live outside this service.
type User struct {
	ID               string    `json:"id" gorm:"primaryKey;size:191"`
	Name             string    `json:"name" gorm:"not null;size:100"`
	Email            string    `json:"email" gorm:"not null;uniqueIndex;size:120"`
	RidingExperience string    `json:"riding_experience" gorm:"size:20;default:beginner"` // beginner, intermediate, expert
	IsActive         bool      `json:"is_active" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
