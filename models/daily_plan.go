package models

import (
    "database/sql/driver"
    "encoding/json"
    "time"
)

// Meal is one planned meal slot of a DailyPlan.
type Meal struct {
    Name        string   `json:"name"`
    Time        string   `json:"time"` // HH:MM
    Calories    float64  `json:"calories"`
    ProteinG    float64  `json:"protein_g"`
    CarbsG      float64  `json:"carbs_g"`
    FatG        float64  `json:"fat_g"`
    Suggestions []string `json:"suggestions"`
    RecipeID    string   `json:"recipe_id,omitempty"`
}

type MealList []Meal

func (m MealList) Value() (driver.Value, error) {
    b, err := json.Marshal(m)
    return string(b), err
}

func (m *MealList) Scan(src interface{}) error { return scanJSON(src, m) }

// WorkoutSection is one block of a workout. Either Sets/Reps or Duration is
// populated, never both.
type WorkoutSection struct {
    Name      string   `json:"name"`
    Exercises []string `json:"exercises"`
    Sets      int      `json:"sets,omitempty"`
    Reps      string   `json:"reps,omitempty"`
    Duration  int      `json:"duration,omitempty"` // minutes
}

type Workout struct {
    Type            string           `json:"type"` // home | gym
    DurationMinutes int              `json:"duration_minutes"`
    Sections        []WorkoutSection `json:"sections"`
    CaloriesBurned  float64          `json:"calories_burned"`
}

func (w Workout) Value() (driver.Value, error) {
    b, err := json.Marshal(w)
    return string(b), err
}

func (w *Workout) Scan(src interface{}) error { return scanJSON(src, w) }

type SleepWindow struct {
    Start string `json:"start"` // bed time, HH:MM
    End   string `json:"end"`   // wake time, HH:MM
}

func (s SleepWindow) Value() (driver.Value, error) {
    b, err := json.Marshal(s)
    return string(b), err
}

func (s *SleepWindow) Scan(src interface{}) error { return scanJSON(src, s) }

type MacroSplit struct {
    Protein float64 `json:"protein"`
    Carbs   float64 `json:"carbs"`
    Fat     float64 `json:"fat"`
}

func (m MacroSplit) Value() (driver.Value, error) {
    b, err := json.Marshal(m)
    return string(b), err
}

func (m *MacroSplit) Scan(src interface{}) error { return scanJSON(src, m) }

// DailyPlan holds one user's plan for one calendar date. The unique index on
// (user_id, date) makes the first successful write canonical under
// concurrent synthesis.
type DailyPlan struct {
    ID             string      `gorm:"type:uuid;primaryKey" json:"id"`
    UserID         uint        `gorm:"uniqueIndex:idx_plans_user_date;not null" json:"user_id"`
    Date           string      `gorm:"size:10;uniqueIndex:idx_plans_user_date;not null" json:"date"` // YYYY-MM-DD
    Meals          MealList    `gorm:"type:jsonb" json:"meals"`
    Workout        Workout     `gorm:"type:jsonb" json:"workout"`
    WaterGoalML    float64     `json:"water_goal_ml"`
    SleepWindow    SleepWindow `gorm:"type:jsonb" json:"sleep_window"`
    StepTarget     int         `json:"step_target"`
    CaloriesTarget float64     `json:"calories_target"`
    Macros         MacroSplit  `gorm:"type:jsonb" json:"macros"`
    CreatedAt      time.Time   `json:"created_at"`
}
