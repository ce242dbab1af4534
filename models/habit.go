package models

import (
	"gorm.io/gorm"
)

// Habit is one named activity a user tracks. Names are unique per user.
// Deleting a habit does not touch its completion records; orphaned
// records are tolerated downstream.
type Habit struct {
	gorm.Model
	UserID uint   `gorm:"index;not null;uniqueIndex:idx_habits_user_name"`
	Name   string `gorm:"not null;uniqueIndex:idx_habits_user_name"`
}
