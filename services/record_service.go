package services

import (
	"context"
	"time"

	"github.com/r4mir3zzz/habit-tracker/models"

	"gorm.io/gorm"
)

// RecordService captures done/not-done observations. Save appends a new
// row every time, so the store accumulates duplicates per (habit, date);
// the aggregator resolves them last-wins. Update is the in-place path.
type RecordService struct{ db *gorm.DB }

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

// Save inserts a new record for the given day. The habit must be in the
// user's catalog; the UI only offers registered habits but the server
// does not trust it.
func (s *RecordService) Save(ctx context.Context, userID uint, habit string, date time.Time, completed bool) (*models.CompletionRecord, error) {
	var known int64
	if err := s.db.WithContext(ctx).Model(&models.Habit{}).
		Where("user_id = ? AND name = ?", userID, habit).
		Count(&known).Error; err != nil {
		return nil, storageErr(err)
	}
	if known == 0 {
		return nil, ErrHabitNotFound
	}

	rec := &models.CompletionRecord{
		UserID:    userID,
		Habit:     habit,
		Date:      dayStart(date),
		Completed: completed,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, storageErr(err)
	}
	return rec, nil
}

// Update rewrites the completion flag of every existing row for
// (habit, date) instead of appending another one.
func (s *RecordService) Update(ctx context.Context, userID uint, habit string, date time.Time, completed bool) error {
	res := s.db.WithContext(ctx).Model(&models.CompletionRecord{}).
		Where("user_id = ? AND habit = ? AND date = ?", userID, habit, dayStart(date)).
		Update("completed", completed)
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ListFor returns every record of a user in insertion order, the order
// the aggregator's last-wins rule depends on.
func (s *RecordService) ListFor(ctx context.Context, userID uint) ([]models.CompletionRecord, error) {
	var records []models.CompletionRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, storageErr(err)
	}
	return records, nil
}
