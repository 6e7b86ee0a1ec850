package services

import (
	"fmt"
	"testing"

	"backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns a fresh in-memory database, one per test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.OnboardingSession{},
		&models.Profile{},
		&models.DailyPlan{},
		&models.Task{},
		&models.ProgressRecord{},
		&models.UserDevice{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedProfile inserts a computed profile the way onboarding would.
func seedProfile(t *testing.T, db *gorm.DB, userID uint) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		UserID:   userID,
		Gender:   "Male",
		AgeGroup: "26-35",
		HeightCm: 175,
		WeightKg: 70,
		BMI:      22.9,

		ActivityLevel: "Moderate",
		DietType:      "Vegetarian",
		Allergies:     models.StringList{"dairy"},

		PrimaryGoal:     "Lose weight",
		EquipmentAccess: "None",
		WakeTime:        "06:30",
		BedTime:         "22:30",

		BMR:               1648.8,
		TDEE:              2555.6,
		CaloriesTarget:    2172,
		ProteinG:          140.0,
		CarbsG:            250.8,
		FatG:              66.4,
		HydrationTargetML: 3240,
		SleepTargetHrs:    8.0,
		StepTarget:        8000,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return profile
}
