package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// Defaults applied to every computed profile; the questionnaire collects
// sleep/step buckets but targets are fixed.
const (
	defaultSleepTargetHrs = 8.0
	defaultStepTarget     = 8000
)

type OnboardingService struct {
	db    *gorm.DB
	plans *PlanService
}

func NewOnboardingService(db *gorm.DB, plans *PlanService) *OnboardingService {
	return &OnboardingService{db: db, plans: plans}
}

func validateAnswers(a *models.OnboardingAnswers) error {
	if a.HeightCm <= 0 || math.IsNaN(a.HeightCm) || math.IsInf(a.HeightCm, 0) {
		return fmt.Errorf("%w: height_cm must be a positive number", ErrInvalidInput)
	}
	if a.WeightKg <= 0 || math.IsNaN(a.WeightKg) || math.IsInf(a.WeightKg, 0) {
		return fmt.Errorf("%w: weight_kg must be a positive number", ErrInvalidInput)
	}
	if _, err := time.Parse("15:04", a.WakeTime); err != nil {
		return fmt.Errorf("%w: wake_time must be HH:MM", ErrInvalidInput)
	}
	if _, err := time.Parse("15:04", a.BedTime); err != nil {
		return fmt.Errorf("%w: bed_time must be HH:MM", ErrInvalidInput)
	}
	return nil
}

// Complete validates the questionnaire, computes the metabolic targets,
// upserts the profile (repeat onboarding recomputes it in place), records
// the session, and materializes today's plan.
func (s *OnboardingService) Complete(ctx context.Context, userID uint, answers models.OnboardingAnswers) (*models.Profile, error) {
	if err := validateAnswers(&answers); err != nil {
		return nil, err
	}

	bmi, err := utils.CalculateBMI(answers.WeightKg, answers.HeightCm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	bmr := utils.CalculateBMR(answers.WeightKg, answers.HeightCm, answers.AgeGroup, answers.Gender)
	tdee := utils.CalculateTDEE(bmr, answers.ActivityLevel)
	macros := utils.CalculateMacros(tdee, answers.PrimaryGoal, answers.WeightKg)
	hydration := utils.HydrationTarget(answers.WeightKg)

	profile := models.Profile{
		UserID:   userID,
		Gender:   answers.Gender,
		AgeGroup: answers.AgeGroup,
		HeightCm: answers.HeightCm,
		WeightKg: answers.WeightKg,
		BMI:      bmi,

		ActivityLevel:  answers.ActivityLevel,
		DietType:       answers.DietType,
		Allergies:      answers.Allergies,
		SmokingAlcohol: answers.SmokingAlcohol,
		StressLevel:    answers.StressLevel,

		PrimaryGoal:          answers.PrimaryGoal,
		EquipmentAccess:      answers.EquipmentAccess,
		WakeTime:             answers.WakeTime,
		BedTime:              answers.BedTime,
		TrainingDays:         answers.TrainingDays,
		PreferredWorkoutTime: answers.PreferredWorkoutTime,

		BMR:               bmr,
		TDEE:              tdee,
		CaloriesTarget:    macros.Calories,
		ProteinG:          macros.ProteinG,
		CarbsG:            macros.CarbsG,
		FatG:              macros.FatG,
		HydrationTargetML: hydration,
		SleepTargetHrs:    defaultSleepTargetHrs,
		StepTarget:        defaultStepTarget,
	}

	var existing models.Profile
	err = s.db.Where("user_id = ?", userID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		if err := s.db.Save(&profile).Error; err != nil {
			return nil, err
		}
	}

	session := models.OnboardingSession{
		UserID:    userID,
		Answers:   answers,
		Completed: true,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	today := time.Now().Format(dateLayout)
	if _, err := s.plans.GetOrCreatePlan(ctx, userID, today); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Status reports whether onboarding was completed and a profile exists.
func (s *OnboardingService) Status(userID uint) (completed, hasProfile bool, err error) {
	var sessionCount int64
	if err := s.db.Model(&models.OnboardingSession{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&sessionCount).Error; err != nil {
		return false, false, err
	}

	var profileCount int64
	if err := s.db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Count(&profileCount).Error; err != nil {
		return false, false, err
	}

	return sessionCount > 0, profileCount > 0, nil
}

func (s *OnboardingService) GetProfile(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: profile not found", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
