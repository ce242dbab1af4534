package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username         string `gorm:"uniqueIndex;not null"`
	Email            string `gorm:"uniqueIndex;not null"`
	PasswordHash     string `gorm:"not null"`
	Verified         bool   `gorm:"default:false"`
	VerificationCode string `gorm:"size:6"` // cleared once verified
	FullName         string
	ProfilePicture   string
}
