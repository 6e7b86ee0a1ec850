package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanGenerator is the generative collaborator of plan synthesis. A nil
// generator means template-only synthesis. GenerateMeals must return one meal
// per slot (breakfast, lunch, dinner, snack, in that order); a response with
// any other length is discarded in favor of the template.
type PlanGenerator interface {
	GenerateMeals(ctx context.Context, profile *models.Profile, date string) ([]models.Meal, error)
	GenerateWorkout(ctx context.Context, profile *models.Profile) (*models.Workout, error)
}

// mealSlot fixes the per-slot calorie fractions (which sum to exactly 1.0)
// and the macro-gram shares drawn from the day totals. The macro shares do
// NOT sum to 1.0 across slots; that is observable behavior inherited from
// the source design and is kept literally.
type mealSlot struct {
	name         string
	slot         string
	time         string
	calorieShare float64
	proteinShare float64
	carbShare    float64
	fatShare     float64
}

var mealSlots = []mealSlot{
	{"Healthy Breakfast", "breakfast", "07:30", 0.25, 0.25, 0.30, 0.20},
	{"Balanced Lunch", "lunch", "12:30", 0.35, 0.40, 0.40, 0.40},
	{"Light Dinner", "dinner", "19:00", 0.30, 0.25, 0.20, 0.30},
	{"Healthy Snack", "snack", "16:00", 0.10, 0.10, 0.10, 0.10},
}

type PlanService struct {
	db        *gorm.DB
	catalog   *Catalog
	generator PlanGenerator
}

func NewPlanService(db *gorm.DB, catalog *Catalog, generator PlanGenerator) *PlanService {
	return &PlanService{db: db, catalog: catalog, generator: generator}
}

// GetPlan fetches an existing plan without synthesizing.
func (s *PlanService) GetPlan(userID uint, date string) (*models.DailyPlan, error) {
	var plan models.DailyPlan
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no plan for %s", ErrNotFound, date)
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetOrCreatePlan returns the existing plan for (user, date), or synthesizes
// and persists one. Synthesis is idempotent: a plan already on record is
// returned unchanged, and if a concurrent request wins the insert race the
// stored plan is re-read and returned (first write is canonical).
func (s *PlanService) GetOrCreatePlan(ctx context.Context, userID uint, date string) (*models.DailyPlan, error) {
	if plan, err := s.GetPlan(userID, date); err == nil {
		return plan, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile missing, complete onboarding first", ErrNotFound)
		}
		return nil, err
	}

	plan := s.BuildPlan(ctx, &profile, date)
	if err := s.db.Create(plan).Error; err != nil {
		// Unique (user_id, date) index: a concurrent create beat us.
		if stored, getErr := s.GetPlan(userID, date); getErr == nil {
			return stored, nil
		}
		return nil, err
	}
	return plan, nil
}

// BuildPlan synthesizes a full day's plan from the profile. Meals and the
// workout each try the generative path first and independently fall back to
// the template path; numeric targets always come from the profile.
func (s *PlanService) BuildPlan(ctx context.Context, profile *models.Profile, date string) *models.DailyPlan {
	meals, mealFallback := s.planMeals(ctx, profile, date)
	if mealFallback != "" {
		log.Printf("plan %s user %d: meal generation fell back to template: %s", date, profile.UserID, mealFallback)
	}

	workout, workoutFallback := s.planWorkout(ctx, profile)
	if workoutFallback != "" {
		log.Printf("plan %s user %d: workout generation fell back to template: %s", date, profile.UserID, workoutFallback)
	}

	return &models.DailyPlan{
		ID:          uuid.NewString(),
		UserID:      profile.UserID,
		Date:        date,
		Meals:       meals,
		Workout:     workout,
		WaterGoalML: profile.HydrationTargetML,
		SleepWindow: models.SleepWindow{
			Start: profile.BedTime,
			End:   profile.WakeTime,
		},
		StepTarget:     profile.StepTarget,
		CaloriesTarget: profile.CaloriesTarget,
		Macros: models.MacroSplit{
			Protein: profile.ProteinG,
			Carbs:   profile.CarbsG,
			Fat:     profile.FatG,
		},
	}
}

// planMeals returns the day's meals plus a fallback reason; an empty reason
// means the generative variant was used (or no generator is configured and
// the template path is the plan of record).
func (s *PlanService) planMeals(ctx context.Context, profile *models.Profile, date string) (models.MealList, string) {
	template := s.templateMeals(profile)
	if s.generator == nil {
		return template, ""
	}

	generated, err := s.generator.GenerateMeals(ctx, profile, date)
	if err != nil {
		return template, err.Error()
	}
	if len(generated) != len(template) {
		return template, fmt.Sprintf("generator returned %d meals, want %d", len(generated), len(template))
	}

	// Drop-in replacement for catalog selection only: names, times and
	// suggestions come from the model, nutrition numbers from the profile.
	meals := make(models.MealList, len(template))
	copy(meals, template)
	for i := range meals {
		meals[i].Name = generated[i].Name
		meals[i].Time = generated[i].Time
		meals[i].Suggestions = generated[i].Suggestions
	}
	return meals, ""
}

func (s *PlanService) planWorkout(ctx context.Context, profile *models.Profile) (models.Workout, string) {
	template := s.catalog.WorkoutTemplate(profile.EquipmentAccess, profile.PrimaryGoal)
	if s.generator == nil {
		return template, ""
	}

	generated, err := s.generator.GenerateWorkout(ctx, profile)
	if err != nil {
		return template, err.Error()
	}
	return *generated, ""
}

func (s *PlanService) templateMeals(profile *models.Profile) models.MealList {
	meals := make(models.MealList, 0, len(mealSlots))
	for _, slot := range mealSlots {
		meals = append(meals, models.Meal{
			Name:        slot.name,
			Time:        slot.time,
			Calories:    profile.CaloriesTarget * slot.calorieShare,
			ProteinG:    profile.ProteinG * slot.proteinShare,
			CarbsG:      profile.CarbsG * slot.carbShare,
			FatG:        profile.FatG * slot.fatShare,
			Suggestions: s.catalog.MealSuggestions(slot.slot, profile.DietType, profile.Allergies),
		})
	}
	return meals
}
