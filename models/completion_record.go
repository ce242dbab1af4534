package models

import (
	"time"

	"gorm.io/gorm"
)

// CompletionRecord is one done/not-done observation for one habit on one
// calendar date. There is deliberately no uniqueness constraint on
// (user_id, habit, date): the save path appends a new row each time, and
// the progress aggregator resolves duplicates by taking the last row in
// insertion order.
type CompletionRecord struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	Habit     string    `gorm:"not null"`
	Date      time.Time `gorm:"index;not null"` // truncate to YYYY-MM-DD
	Completed bool
}
