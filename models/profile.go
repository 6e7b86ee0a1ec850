package models

import (
    "time"
)

// Profile is the derived, versioned snapshot computed from onboarding
// answers. Recomputed (overwritten) whenever onboarding is repeated.
type Profile struct {
    ID     uint `gorm:"primaryKey" json:"-"`
    UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

    Gender   string  `json:"gender"`
    AgeGroup string  `json:"age_group"`
    HeightCm float64 `json:"height_cm"`
    WeightKg float64 `json:"weight_kg"`
    BMI      float64 `json:"bmi"`

    ActivityLevel  string     `json:"activity_level"`
    DietType       string     `json:"diet_type"`
    Allergies      StringList `gorm:"type:jsonb" json:"allergies"`
    SmokingAlcohol string     `json:"smoking_alcohol"`
    StressLevel    string     `json:"stress_level"`

    PrimaryGoal          string     `json:"primary_goal"`
    EquipmentAccess      string     `json:"equipment_access"`
    WakeTime             string     `gorm:"size:5" json:"wake_time"`
    BedTime              string     `gorm:"size:5" json:"bed_time"`
    TrainingDays         StringList `gorm:"type:jsonb" json:"training_days"`
    PreferredWorkoutTime string     `json:"preferred_workout_time"`

    BMR               float64 `json:"bmr"`
    TDEE              float64 `json:"tdee"`
    CaloriesTarget    float64 `json:"calories_target"`
    ProteinG          float64 `json:"protein_g"`
    CarbsG            float64 `json:"carbs_g"`
    FatG              float64 `json:"fat_g"`
    HydrationTargetML float64 `json:"hydration_target_ml"`
    SleepTargetHrs    float64 `json:"sleep_target_hrs"`
    StepTarget        int     `json:"step_target"`

    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}
