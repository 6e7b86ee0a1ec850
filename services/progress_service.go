package services

import (
	"sort"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// workoutCreditMinutes is the fixed credit recorded when any workout task
// completes, independent of the planned duration. Inherited behavior, kept
// as specified.
const workoutCreditMinutes = 30

const dateLayout = "2006-01-02"

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// ApplyTaskCompletion folds one completed task into a progress record.
// Updates are additive only; un-completing a task does not reverse them.
func ApplyTaskCompletion(record *models.ProgressRecord, taskType string) {
	switch taskType {
	case "meal":
		record.MealsCompleted++
	case "workout":
		record.WorkoutsMinutes = workoutCreditMinutes
	}
	// water/sleep/generic tasks carry no numeric update
}

// OnTaskCompleted ensures a progress record exists for the task's own date
// and folds the completion into it.
func (s *ProgressService) OnTaskCompleted(task *models.Task) (*models.ProgressRecord, error) {
	record := models.ProgressRecord{UserID: task.UserID, Date: task.Date}
	if err := s.db.Where("user_id = ? AND date = ?", task.UserID, task.Date).
		FirstOrCreate(&record).Error; err != nil {
		return nil, err
	}

	ApplyTaskCompletion(&record, task.Type)

	if err := s.db.Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

type ProgressSummary struct {
	WeeklyWorkouts      int                     `json:"weekly_workouts"`
	TotalMealsCompleted int                     `json:"total_meals_completed"`
	AvgDailyWaterML     float64                 `json:"avg_daily_water_ml"`
	CurrentStreak       int                     `json:"current_streak"`
	MaxStreak           int                     `json:"max_streak"`
	ProgressData        []models.ProgressRecord `json:"progress_data"`
}

// Summary aggregates the trailing window of progress records and computes
// streaks from completed-task history. A day counts toward a streak when at
// least one task was completed on it.
func (s *ProgressService) Summary(userID uint, windowDays int, today time.Time) (*ProgressSummary, error) {
	if windowDays <= 0 {
		windowDays = 7
	}
	since := today.AddDate(0, 0, -(windowDays - 1)).Format(dateLayout)

	var records []models.ProgressRecord
	if err := s.db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date asc").Find(&records).Error; err != nil {
		return nil, err
	}

	summary := &ProgressSummary{ProgressData: records}
	var waterTotal float64
	for _, r := range records {
		if r.WorkoutsMinutes > 0 {
			summary.WeeklyWorkouts++
		}
		summary.TotalMealsCompleted += r.MealsCompleted
		if r.WaterML != nil {
			waterTotal += *r.WaterML
		}
	}
	if len(records) > 0 {
		summary.AvgDailyWaterML = waterTotal / float64(len(records))
	}

	var completionDays []string
	if err := s.db.Model(&models.Task{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Distinct("date").Pluck("date", &completionDays).Error; err != nil {
		return nil, err
	}
	summary.CurrentStreak, summary.MaxStreak = ComputeStreaks(completionDays, today)

	return summary, nil
}

// ComputeStreaks returns the count of consecutive completion days ending
// today and the longest consecutive run anywhere in the history. Days are
// YYYY-MM-DD strings; duplicates and unparsable entries are ignored.
func ComputeStreaks(days []string, today time.Time) (current, max int) {
	seen := make(map[string]bool, len(days))
	var dates []time.Time
	for _, d := range days {
		t, err := time.Parse(dateLayout, d)
		if err != nil || seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, t)
	}
	if len(dates) == 0 {
		return 0, 0
	}

	day := today
	for seen[day.Format(dateLayout)] {
		current++
		day = day.AddDate(0, 0, -1)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	run := 1
	max = 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > max {
			max = run
		}
	}
	return current, max
}
