package models

import "time"

// ProgressRecord accumulates one user's completions for one date. Created
// lazily on the first completion of the day; updated additively, never
// recomputed from scratch.
type ProgressRecord struct {
    ID     uint   `gorm:"primaryKey" json:"-"`
    UserID uint   `gorm:"uniqueIndex:idx_progress_user_date;not null" json:"user_id"`
    Date   string `gorm:"size:10;uniqueIndex:idx_progress_user_date;not null" json:"date"`

    WeightKg        *float64 `json:"weight_kg"`
    Steps           *int     `json:"steps"`
    WaterML         *float64 `json:"water_ml"`
    WorkoutsMinutes int      `json:"workouts_minutes"`
    MealsCompleted  int      `json:"meals_completed"`
    FitnessScore    *float64 `json:"fitness_score"`
    StreakCurrent   int      `json:"streak_current"`
    StreakMax       int      `json:"streak_max"`

    UpdatedAt time.Time `json:"updated_at"`
}
