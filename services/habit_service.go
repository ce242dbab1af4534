package services

import (
	"context"

	"github.com/r4mir3zzz/habit-tracker/models"

	"gorm.io/gorm"
)

// HabitService manages each user's habit catalog. Removing a habit
// leaves its completion records behind; only the catalog entry goes.
type HabitService struct{ db *gorm.DB }

func NewHabitService(db *gorm.DB) *HabitService {
	return &HabitService{db: db}
}

func (s *HabitService) Add(ctx context.Context, userID uint, name string) (*models.Habit, error) {
	habit := &models.Habit{UserID: userID, Name: name}
	if err := s.db.WithContext(ctx).Create(habit).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrHabitExists
		}
		return nil, storageErr(err)
	}
	return habit, nil
}

func (s *HabitService) List(ctx context.Context, userID uint) ([]string, error) {
	var names []string
	if err := s.db.WithContext(ctx).Model(&models.Habit{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, storageErr(err)
	}
	return names, nil
}

func (s *HabitService) Remove(ctx context.Context, userID uint, name string) error {
	res := s.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND name = ?", userID, name).
		Delete(&models.Habit{})
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrHabitNotFound
	}
	return nil
}
