package services

import (
	"strings"

	"backend/models"
)

const maxSuggestions = 4

// Catalog holds the static meal-suggestion and workout-template tables the
// template path draws from. Lookups are total: every slot/diet/equipment
// combination resolves to something.
type Catalog struct {
	vegMeals    map[string][]string
	nonVegMeals map[string][]string
	// allergenDenylist maps a declared allergen to substrings that disqualify
	// a suggestion (matched case-insensitively).
	allergenDenylist map[string][]string
}

func NewCatalog() *Catalog {
	return &Catalog{
		vegMeals: map[string][]string{
			"breakfast": {"Oats with fruits", "Poha with vegetables", "Upma with nuts", "Smoothie bowl"},
			"lunch":     {"Dal-Chawal with vegetables", "Quinoa salad", "Vegetable curry with roti", "Paneer bhurji"},
			"dinner":    {"Light dal with roti", "Vegetable soup", "Grilled paneer salad", "Curd rice"},
			"snack":     {"Mixed nuts", "Fruit salad", "Yogurt with berries", "Sprouts chaat"},
		},
		nonVegMeals: map[string][]string{
			"breakfast": {"Egg omelette with toast", "Scrambled eggs", "Egg sandwich", "Protein smoothie"},
			"lunch":     {"Grilled chicken with rice", "Fish curry with roti", "Chicken salad", "Egg curry"},
			"dinner":    {"Grilled fish with vegetables", "Chicken soup", "Lean meat with salad", "Egg bhurji"},
			"snack":     {"Boiled eggs", "Chicken strips", "Protein bar", "Greek yogurt"},
		},
		allergenDenylist: map[string][]string{
			"dairy":  {"paneer", "curd", "yogurt"},
			"peanut": {"peanut", "nuts"},
			"gluten": {"toast", "roti", "sandwich", "bread"},
		},
	}
}

// MealSuggestions returns up to 4 suggestions for a meal slot, filtered by
// the declared allergies. Vegetarian and non-vegetarian lists are
// concatenated for balanced or unrecognized diet types.
func (c *Catalog) MealSuggestions(slot, dietType string, allergies []string) []string {
	var suggestions []string
	switch dietType {
	case "Vegetarian":
		suggestions = c.vegMeals[slot]
	case "Non-veg":
		suggestions = c.nonVegMeals[slot]
	default: // Balanced or others
		suggestions = append(append([]string{}, c.vegMeals[slot]...), c.nonVegMeals[slot]...)
	}

	for _, allergen := range allergies {
		denied := c.allergenDenylist[strings.ToLower(allergen)]
		if len(denied) == 0 {
			continue
		}
		kept := suggestions[:0:0]
		for _, s := range suggestions {
			if !containsAny(strings.ToLower(s), denied) {
				kept = append(kept, s)
			}
		}
		suggestions = kept
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

const burnRatePerMinute = 5 // rough kcal/min estimate for template workouts

// WorkoutTemplate picks the workout for an equipment/goal combination.
func (c *Catalog) WorkoutTemplate(equipment, goal string) models.Workout {
	var workoutType string
	var sections []models.WorkoutSection
	var duration int

	switch equipment {
	case "None":
		workoutType = "home"
		duration = 30
		sections = []models.WorkoutSection{
			{Name: "Warmup", Exercises: []string{"Jumping jacks", "Arm circles"}, Duration: 5},
			{Name: "Bodyweight", Exercises: []string{"Push-ups", "Squats", "Planks"}, Sets: 3, Reps: "12-15"},
			{Name: "Cardio", Exercises: []string{"High knees", "Burpees"}, Duration: 10},
		}
	case "Full gym":
		workoutType = "gym"
		duration = 45
		if goal == "Gain muscle" {
			sections = []models.WorkoutSection{
				{Name: "Warmup", Exercises: []string{"Treadmill walk"}, Duration: 5},
				{Name: "Compound", Exercises: []string{"Bench press", "Squats", "Deadlifts"}, Sets: 4, Reps: "6-8"},
				{Name: "Accessories", Exercises: []string{"Bicep curls", "Tricep extensions"}, Sets: 3, Reps: "10-12"},
			}
		} else {
			sections = []models.WorkoutSection{
				{Name: "Warmup", Exercises: []string{"Treadmill"}, Duration: 5},
				{Name: "Cardio", Exercises: []string{"Running", "Cycling"}, Duration: 20},
				{Name: "Strength", Exercises: []string{"Light weights"}, Sets: 3, Reps: "12-15"},
			}
		}
	default: // Bands or Dumbbells
		workoutType = "home"
		duration = 35
		sections = []models.WorkoutSection{
			{Name: "Warmup", Exercises: []string{"Dynamic stretching"}, Duration: 5},
			{Name: "Resistance", Exercises: []string{"Band pulls", "Dumbbell rows"}, Sets: 3, Reps: "10-12"},
			{Name: "Cardio", Exercises: []string{"Jump rope", "Mountain climbers"}, Duration: 10},
		}
	}

	return models.Workout{
		Type:            workoutType,
		DurationMinutes: duration,
		Sections:        sections,
		CaloriesBurned:  float64(duration * burnRatePerMinute),
	}
}
