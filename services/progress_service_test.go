package services

import (
	"errors"
	"testing"

	"github.com/r4mir3zzz/habit-tracker/models"
)

func rec(t *testing.T, habit, date string, completed bool) models.CompletionRecord {
	t.Helper()
	return models.CompletionRecord{Habit: habit, Date: day(t, date), Completed: completed}
}

func TestComputeDailyCompletionEmpty(t *testing.T) {
	series, err := ComputeDailyCompletion(nil, 3)
	if err != nil {
		t.Fatalf("ComputeDailyCompletion(nil): %v", err)
	}
	if len(series) != 0 {
		t.Fatalf("series = %v, want empty", series)
	}
}

func TestComputeDailyCompletionGuardsZeroDenominator(t *testing.T) {
	records := []models.CompletionRecord{rec(t, "Exercise", "2024-01-01", true)}
	if _, err := ComputeDailyCompletion(records, 0); !errors.Is(err, ErrNoHabitCatalog) {
		t.Fatalf("err = %v, want ErrNoHabitCatalog", err)
	}
}

func TestComputeDailyCompletionLastRecordWins(t *testing.T) {
	records := []models.CompletionRecord{
		rec(t, "Exercise", "2024-01-01", false),
		rec(t, "Exercise", "2024-01-01", true),
	}

	series, err := ComputeDailyCompletion(records, 1)
	if err != nil {
		t.Fatalf("ComputeDailyCompletion: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("series length = %d, want 1", len(series))
	}
	if series[0].Date != "2024-01-01" || series[0].Percent != 100 {
		t.Fatalf("series[0] = %+v, want {2024-01-01 100}", series[0])
	}

	// reversed insertion order flips the outcome
	series, err = ComputeDailyCompletion([]models.CompletionRecord{
		rec(t, "Exercise", "2024-01-01", true),
		rec(t, "Exercise", "2024-01-01", false),
	}, 1)
	if err != nil {
		t.Fatalf("ComputeDailyCompletion: %v", err)
	}
	if series[0].Percent != 0 {
		t.Fatalf("percent = %v, want 0 when the later record is not-done", series[0].Percent)
	}
}

func TestComputeDailyCompletionZeroFillWithoutInterpolation(t *testing.T) {
	records := []models.CompletionRecord{
		rec(t, "Exercise", "2024-01-01", false),
		rec(t, "Read", "2024-01-01", false),
		rec(t, "Exercise", "2024-01-03", true),
		rec(t, "Read", "2024-01-03", true),
	}

	series, err := ComputeDailyCompletion(records, 2)
	if err != nil {
		t.Fatalf("ComputeDailyCompletion: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("series = %+v, want exactly two entries", series)
	}
	if series[0].Date != "2024-01-01" || series[0].Percent != 0 {
		t.Fatalf("series[0] = %+v, want {2024-01-01 0}", series[0])
	}
	// 2024-01-02 has no record and must not be synthesized
	if series[1].Date != "2024-01-03" || series[1].Percent != 100 {
		t.Fatalf("series[1] = %+v, want {2024-01-03 100}", series[1])
	}
}

func TestComputeDailyCompletionSortsDates(t *testing.T) {
	records := []models.CompletionRecord{
		rec(t, "Exercise", "2024-02-10", true),
		rec(t, "Exercise", "2024-01-05", true),
		rec(t, "Exercise", "2024-01-20", false),
	}

	series, err := ComputeDailyCompletion(records, 1)
	if err != nil {
		t.Fatalf("ComputeDailyCompletion: %v", err)
	}
	want := []string{"2024-01-05", "2024-01-20", "2024-02-10"}
	if len(series) != len(want) {
		t.Fatalf("series length = %d, want %d", len(series), len(want))
	}
	for i, d := range want {
		if series[i].Date != d {
			t.Fatalf("series[%d].Date = %s, want %s", i, series[i].Date, d)
		}
	}
}

func TestComputeDailyCompletionPartialDays(t *testing.T) {
	// day 1: Exercise done, Read not. day 2: both done.
	records := []models.CompletionRecord{
		rec(t, "Exercise", "2024-01-01", true),
		rec(t, "Read", "2024-01-01", false),
		rec(t, "Exercise", "2024-01-02", true),
		rec(t, "Read", "2024-01-02", true),
	}

	series, err := ComputeDailyCompletion(records, 2)
	if err != nil {
		t.Fatalf("ComputeDailyCompletion: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("series length = %d, want 2", len(series))
	}
	if series[0].Percent != 50 {
		t.Fatalf("day 1 percent = %v, want 50", series[0].Percent)
	}
	if series[1].Percent != 100 {
		t.Fatalf("day 2 percent = %v, want 100", series[1].Percent)
	}
}

func TestDailySeriesForUsesLiveHabitRegistry(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "luis")
	habits := NewHabitService(db)
	recs := NewRecordService(db)
	progress := NewProgressService(db)

	for _, h := range []string{"Exercise", "Read"} {
		if _, err := habits.Add(ctx(), user.ID, h); err != nil {
			t.Fatalf("Add(%s): %v", h, err)
		}
	}
	if _, err := recs.Save(ctx(), user.ID, "Exercise", day(t, "2024-01-01"), true); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := recs.Save(ctx(), user.ID, "Read", day(t, "2024-01-01"), false); err != nil {
		t.Fatalf("Save: %v", err)
	}

	series, err := progress.DailySeriesFor(ctx(), user.ID)
	if err != nil {
		t.Fatalf("DailySeriesFor: %v", err)
	}
	if len(series) != 1 || series[0].Percent != 50 {
		t.Fatalf("series = %+v, want one entry at 50%%", series)
	}

	// removing a habit shrinks the denominator immediately
	if err := habits.Remove(ctx(), user.ID, "Read"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	series, err = progress.DailySeriesFor(ctx(), user.ID)
	if err != nil {
		t.Fatalf("DailySeriesFor after remove: %v", err)
	}
	if series[0].Percent != 100 {
		t.Fatalf("percent = %v, want 100 with one live habit", series[0].Percent)
	}

	// records with no habit catalog at all is a data-integrity error
	if err := habits.Remove(ctx(), user.ID, "Exercise"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := progress.DailySeriesFor(ctx(), user.ID); !errors.Is(err, ErrNoHabitCatalog) {
		t.Fatalf("err = %v, want ErrNoHabitCatalog", err)
	}
}

func TestDailySeriesForDropsOrphanedRecords(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "luis")
	habits := NewHabitService(db)
	recs := NewRecordService(db)
	progress := NewProgressService(db)

	for _, h := range []string{"Exercise", "Read"} {
		if _, err := habits.Add(ctx(), user.ID, h); err != nil {
			t.Fatalf("Add(%s): %v", h, err)
		}
	}
	if _, err := recs.Save(ctx(), user.ID, "Exercise", day(t, "2024-01-01"), true); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := recs.Save(ctx(), user.ID, "Read", day(t, "2024-01-01"), true); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// a day recorded only for the habit about to be deleted
	if _, err := recs.Save(ctx(), user.ID, "Read", day(t, "2024-01-02"), true); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := habits.Remove(ctx(), user.ID, "Read"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	// the leftover Read rows must not count toward the one remaining
	// habit, and the Read-only day must vanish from the series
	series, err := progress.DailySeriesFor(ctx(), user.ID)
	if err != nil {
		t.Fatalf("DailySeriesFor: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("series = %+v, want one entry", series)
	}
	if series[0].Date != "2024-01-01" || series[0].Percent != 100 {
		t.Fatalf("series[0] = %+v, want 2024-01-01 at 100", series[0])
	}
	for _, p := range series {
		if p.Percent < 0 || p.Percent > 100 {
			t.Fatalf("percent %v outside [0, 100]", p.Percent)
		}
	}
}

func TestDailySeriesForEmptyUser(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "luis")
	progress := NewProgressService(db)

	series, err := progress.DailySeriesFor(ctx(), user.ID)
	if err != nil {
		t.Fatalf("DailySeriesFor: %v", err)
	}
	if len(series) != 0 {
		t.Fatalf("series = %+v, want empty", series)
	}
}

func TestHabitTotalsFor(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "luis")
	habits := NewHabitService(db)
	recs := NewRecordService(db)
	progress := NewProgressService(db)

	if _, err := habits.Add(ctx(), user.ID, "Exercise"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	for i, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		if _, err := recs.Save(ctx(), user.ID, "Exercise", day(t, d), i != 1); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	totals, err := progress.HabitTotalsFor(ctx(), user.ID)
	if err != nil {
		t.Fatalf("HabitTotalsFor: %v", err)
	}
	if len(totals) != 1 {
		t.Fatalf("totals = %+v, want one habit", totals)
	}
	got := totals[0]
	if got.Habit != "Exercise" || got.Recorded != 3 || got.Completed != 2 || got.RatePct != 66.7 {
		t.Fatalf("totals[0] = %+v, want {Exercise 3 2 66.7}", got)
	}
}
