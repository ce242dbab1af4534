package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/r4mir3zzz/habit-tracker/models"
	"github.com/r4mir3zzz/habit-tracker/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	FullName       string `json:"full_name"`
	ProfilePicture string `json:"profile_picture"` // base64 data URI
}

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Profile(ctx context.Context, userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, storageErr(err)
	}

	return map[string]interface{}{
		"id":              user.ID,
		"username":        user.Username,
		"email":           user.Email,
		"full_name":       user.FullName,
		"verified":        user.Verified,
		"profile_picture": user.ProfilePicture,
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input ProfileInput) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownUser
		}
		return storageErr(err)
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadAvatar(input.ProfilePicture, user.Username)
		if err != nil {
			return fmt.Errorf("failed to upload avatar: %v", err)
		}
		user.ProfilePicture = url
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

// FindByUsername resolves a username to its account.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, storageErr(err)
	}
	return &user, nil
}
