package models

import (
    "database/sql/driver"
    "encoding/json"
    "errors"

    "gorm.io/gorm"
)

// StringList stores a []string as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
    if l == nil {
        return "[]", nil
    }
    b, err := json.Marshal(l)
    return string(b), err
}

func (l *StringList) Scan(src interface{}) error {
    return scanJSON(src, l)
}

func scanJSON(src, dst interface{}) error {
    switch v := src.(type) {
    case nil:
        return nil
    case []byte:
        return json.Unmarshal(v, dst)
    case string:
        return json.Unmarshal([]byte(v), dst)
    default:
        return errors.New("unsupported type for JSON column")
    }
}

// OnboardingAnswers is the immutable questionnaire payload. Field names are
// the wire contract with the client.
type OnboardingAnswers struct {
    FullName string  `json:"full_name" binding:"required"`
    AgeGroup string  `json:"age_group"` // 18-25, 26-35, 36-45, 46+
    Gender   string  `json:"gender"`    // Male, Female, Other
    HeightCm float64 `json:"height_cm" binding:"required"`
    WeightKg float64 `json:"weight_kg" binding:"required"`

    ActivityLevel     string `json:"activity_level"` // Sedentary, Light, Moderate, Very Active
    StepsPerDay       string `json:"steps_per_day"`
    ExerciseFrequency string `json:"exercise_frequency"`
    SleepHours        string `json:"sleep_hours"`
    WaterIntake       string `json:"water_intake"`

    DietType          string     `json:"diet_type"` // Balanced, Vegetarian, Non-veg, ...
    FruitsVegetables  string     `json:"fruits_vegetables"`
    SmokingAlcohol    string     `json:"smoking_alcohol"`
    StressLevel       string     `json:"stress_level"`
    Allergies         StringList `json:"allergies"`
    CuisinePreference string     `json:"cuisine_preference"`

    PrimaryGoal          string     `json:"primary_goal"`     // Lose weight, Gain muscle, Maintain, Improve stamina
    EquipmentAccess      string     `json:"equipment_access"` // None, Bands, Dumbbells, Full gym
    PreferredWorkoutTime string     `json:"preferred_workout_time"`
    WakeTime             string     `json:"wake_time"` // HH:MM
    BedTime              string     `json:"bed_time"`  // HH:MM
    TrainingDays         StringList `json:"training_days"`
}

// OnboardingSession records a completed questionnaire submission.
type OnboardingSession struct {
    gorm.Model
    UserID    uint `gorm:"index;not null"`
    Answers   OnboardingAnswers `gorm:"type:jsonb"`
    Completed bool
}

func (a OnboardingAnswers) Value() (driver.Value, error) {
    b, err := json.Marshal(a)
    return string(b), err
}

func (a *OnboardingAnswers) Scan(src interface{}) error {
    return scanJSON(src, a)
}
