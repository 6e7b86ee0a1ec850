package services

import (
	"testing"
	"time"

	"backend/models"
)

func TestApplyTaskCompletion(t *testing.T) {
	var record models.ProgressRecord

	ApplyTaskCompletion(&record, "meal")
	if record.MealsCompleted != 1 {
		t.Errorf("meals_completed = %d, want 1", record.MealsCompleted)
	}
	if record.WorkoutsMinutes != 0 {
		t.Errorf("meal completion touched workouts_minutes: %d", record.WorkoutsMinutes)
	}

	ApplyTaskCompletion(&record, "meal")
	if record.MealsCompleted != 2 {
		t.Errorf("meals_completed = %d, want 2", record.MealsCompleted)
	}

	// workout completion records the fixed credit, not the planned duration
	ApplyTaskCompletion(&record, "workout")
	if record.WorkoutsMinutes != workoutCreditMinutes {
		t.Errorf("workouts_minutes = %d, want %d", record.WorkoutsMinutes, workoutCreditMinutes)
	}

	before := record
	ApplyTaskCompletion(&record, "water")
	ApplyTaskCompletion(&record, "sleep")
	if record != before {
		t.Errorf("water/sleep completion changed the record: %+v", record)
	}
}

func TestOnTaskCompleted(t *testing.T) {
	db := openTestDB(t)
	svc := NewProgressService(db)

	task := &models.Task{ID: "t1", UserID: 1, Date: "2026-08-31", Type: "meal"}
	record, err := svc.OnTaskCompleted(task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.MealsCompleted != 1 {
		t.Errorf("meals_completed = %d, want 1", record.MealsCompleted)
	}

	// same day accumulates onto the same record
	task2 := &models.Task{ID: "t2", UserID: 1, Date: "2026-08-31", Type: "workout"}
	record, err = svc.OnTaskCompleted(task2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.MealsCompleted != 1 || record.WorkoutsMinutes != workoutCreditMinutes {
		t.Errorf("record = %+v", record)
	}

	var count int64
	db.Model(&models.ProgressRecord{}).Where("user_id = ?", 1).Count(&count)
	if count != 1 {
		t.Errorf("progress records = %d, want 1", count)
	}
}

func TestSummary(t *testing.T) {
	db := openTestDB(t)
	svc := NewProgressService(db)

	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	water1, water2 := 2000.0, 3000.0
	records := []models.ProgressRecord{
		{UserID: 1, Date: "2026-08-29", MealsCompleted: 3, WorkoutsMinutes: 30, WaterML: &water1},
		{UserID: 1, Date: "2026-08-30", MealsCompleted: 2, WaterML: &water2},
		{UserID: 1, Date: "2026-08-31", MealsCompleted: 1, WorkoutsMinutes: 30},
		// outside the 7-day window
		{UserID: 1, Date: "2026-08-01", MealsCompleted: 9, WorkoutsMinutes: 30},
	}
	for i := range records {
		if err := db.Create(&records[i]).Error; err != nil {
			t.Fatalf("seed record: %v", err)
		}
	}

	summary, err := svc.Summary(1, 7, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.WeeklyWorkouts != 2 {
		t.Errorf("weekly_workouts = %d, want 2", summary.WeeklyWorkouts)
	}
	if summary.TotalMealsCompleted != 6 {
		t.Errorf("total_meals_completed = %d, want 6", summary.TotalMealsCompleted)
	}
	if want := (water1 + water2) / 3; summary.AvgDailyWaterML != want {
		t.Errorf("avg_daily_water_ml = %v, want %v", summary.AvgDailyWaterML, want)
	}
	if len(summary.ProgressData) != 3 {
		t.Errorf("progress_data has %d records, want 3", len(summary.ProgressData))
	}
}

func TestSummaryEmpty(t *testing.T) {
	db := openTestDB(t)
	svc := NewProgressService(db)

	summary, err := svc.Summary(1, 7, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.AvgDailyWaterML != 0 || summary.TotalMealsCompleted != 0 || summary.CurrentStreak != 0 {
		t.Errorf("empty summary = %+v", summary)
	}
}

func TestComputeStreaks(t *testing.T) {
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		days        []string
		wantCurrent int
		wantMax     int
	}{
		{"empty", nil, 0, 0},
		{"single today", []string{"2026-08-31"}, 1, 1},
		{"three ending today", []string{"2026-08-29", "2026-08-30", "2026-08-31"}, 3, 3},
		{"broken yesterday", []string{"2026-08-28", "2026-08-29"}, 0, 2},
		{"longer run in the past", []string{"2026-08-20", "2026-08-21", "2026-08-22", "2026-08-23", "2026-08-31"}, 1, 4},
		{"duplicates ignored", []string{"2026-08-31", "2026-08-31", "2026-08-30"}, 2, 2},
		{"unparsable ignored", []string{"yesterday", "2026-08-31"}, 1, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			current, max := ComputeStreaks(c.days, today)
			if current != c.wantCurrent || max != c.wantMax {
				t.Errorf("ComputeStreaks = (%d, %d), want (%d, %d)", current, max, c.wantCurrent, c.wantMax)
			}
		})
	}
}
