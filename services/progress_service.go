package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/r4mir3zzz/habit-tracker/models"

	"gorm.io/gorm"
)

const dayFormat = "2006-01-02"

// DailyCompletion is one point of a user's completion series: the share
// of their habits done on one recorded date, in [0, 100].
type DailyCompletion struct {
	Date    string  `json:"date"`
	Percent float64 `json:"percent"`
}

// ComputeDailyCompletion turns a raw record list into a daily
// completion-percentage series. It is a pure function; callers fetch the
// records and the habit count.
//
// The store may hold several rows for the same (habit, date) because the
// save path appends instead of upserting. Records arrive in insertion
// order and the last row per (habit, date) wins. Every date with at
// least one record appears in the output, ascending, including dates
// where nothing was completed (percent 0); dates with no record at all
// are never synthesized.
func ComputeDailyCompletion(records []models.CompletionRecord, totalHabits int) ([]DailyCompletion, error) {
	if len(records) == 0 {
		return []DailyCompletion{}, nil
	}
	if totalHabits <= 0 {
		return nil, ErrNoHabitCatalog
	}

	type key struct{ habit, date string }
	latest := make(map[key]bool, len(records))
	for _, r := range records {
		latest[key{r.Habit, r.Date.Format(dayFormat)}] = r.Completed
	}

	completed := make(map[string]int)
	for k, done := range latest {
		if done {
			completed[k.date]++
		} else if _, ok := completed[k.date]; !ok {
			completed[k.date] = 0
		}
	}

	dates := make([]string, 0, len(completed))
	for d := range completed {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	series := make([]DailyCompletion, 0, len(dates))
	for _, d := range dates {
		series = append(series, DailyCompletion{
			Date:    d,
			Percent: float64(completed[d]) / float64(totalHabits) * 100,
		})
	}
	return series, nil
}

// HabitSummary is the per-habit rollup behind the progress table: how
// often a habit was recorded, how often it was done, and the resulting
// rate rounded to one decimal for display.
type HabitSummary struct {
	Habit     string  `json:"habit"`
	Recorded  int     `json:"recorded"`
	Completed int     `json:"completed"`
	RatePct   float64 `json:"rate_pct"`
}

// ProgressService feeds the chart and table endpoints. The aggregation
// itself stays in ComputeDailyCompletion; this layer only fetches.
type ProgressService struct{ db *gorm.DB }

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// DailySeriesFor returns userID's completion series. The denominator is
// the live habit registry, so deleting a habit immediately changes what
// 100% means. Records left behind by deleted habits are dropped from
// the numerator too, keeping every percentage inside [0, 100].
func (s *ProgressService) DailySeriesFor(ctx context.Context, userID uint) ([]DailyCompletion, error) {
	records, err := s.recordsFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := s.db.WithContext(ctx).Model(&models.Habit{}).
		Where("user_id = ?", userID).
		Pluck("name", &names).Error; err != nil {
		return nil, storageErr(err)
	}

	if len(records) > 0 && len(names) == 0 {
		return nil, ErrNoHabitCatalog
	}

	catalog := make(map[string]bool, len(names))
	for _, n := range names {
		catalog[n] = true
	}
	kept := records[:0]
	for _, r := range records {
		if catalog[r.Habit] {
			kept = append(kept, r)
		}
	}

	return ComputeDailyCompletion(kept, len(names))
}

// HabitTotalsFor rolls up every raw record per habit, duplicates
// included: each saved row counts as one observation.
func (s *ProgressService) HabitTotalsFor(ctx context.Context, userID uint) ([]HabitSummary, error) {
	records, err := s.recordsFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	recorded := make(map[string]int)
	done := make(map[string]int)
	var habits []string
	for _, r := range records {
		if recorded[r.Habit] == 0 {
			habits = append(habits, r.Habit)
		}
		recorded[r.Habit]++
		if r.Completed {
			done[r.Habit]++
		}
	}
	sort.Strings(habits)

	out := make([]HabitSummary, 0, len(habits))
	for _, h := range habits {
		rate := float64(done[h]) / float64(recorded[h]) * 100
		out = append(out, HabitSummary{
			Habit:     h,
			Recorded:  recorded[h],
			Completed: done[h],
			RatePct:   math.Round(rate*10) / 10,
		})
	}
	return out, nil
}

// RecentRecordsFor returns the latest saved rows, newest first.
func (s *ProgressService) RecentRecordsFor(ctx context.Context, userID uint, limit int) ([]models.CompletionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	var records []models.CompletionRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, storageErr(err)
	}
	return records, nil
}

func (s *ProgressService) recordsFor(ctx context.Context, userID uint) ([]models.CompletionRecord, error) {
	var records []models.CompletionRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC"). // insertion order; last row per (habit, date) wins downstream
		Find(&records).Error; err != nil {
		return nil, storageErr(err)
	}
	return records, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
