package services

import (
	"strings"
	"testing"
)

func TestMealSuggestionsAllergyFilter(t *testing.T) {
	catalog := NewCatalog()

	for _, slot := range []string{"breakfast", "lunch", "dinner", "snack"} {
		suggestions := catalog.MealSuggestions(slot, "Vegetarian", []string{"dairy"})
		for _, s := range suggestions {
			lower := strings.ToLower(s)
			for _, banned := range []string{"paneer", "curd", "yogurt"} {
				if strings.Contains(lower, banned) {
					t.Errorf("slot %s: suggestion %q contains banned %q", slot, s, banned)
				}
			}
		}
	}
}

func TestMealSuggestionsCap(t *testing.T) {
	catalog := NewCatalog()

	// balanced concatenates veg + non-veg, then truncates
	suggestions := catalog.MealSuggestions("lunch", "Balanced", nil)
	if len(suggestions) != maxSuggestions {
		t.Errorf("balanced lunch: got %d suggestions, want %d", len(suggestions), maxSuggestions)
	}
	// order preserved: veg entries come first
	if suggestions[0] != "Dal-Chawal with vegetables" {
		t.Errorf("balanced lunch starts with %q", suggestions[0])
	}
}

func TestMealSuggestionsTotalLookup(t *testing.T) {
	catalog := NewCatalog()

	// unrecognized diet behaves like balanced
	if got := catalog.MealSuggestions("dinner", "Pescatarian", nil); len(got) == 0 {
		t.Error("unrecognized diet type returned no suggestions")
	}
	// unknown allergen filters nothing
	got := catalog.MealSuggestions("snack", "Vegetarian", []string{"shellfish"})
	if len(got) != maxSuggestions {
		t.Errorf("unknown allergen: got %d suggestions, want %d", len(got), maxSuggestions)
	}
}

func TestWorkoutTemplate(t *testing.T) {
	catalog := NewCatalog()

	cases := []struct {
		equipment    string
		goal         string
		wantType     string
		wantDuration int
	}{
		{"None", "Lose weight", "home", 30},
		{"Full gym", "Gain muscle", "gym", 45},
		{"Full gym", "Lose weight", "gym", 45},
		{"Bands", "Maintain", "home", 35},
		{"Dumbbells", "Gain muscle", "home", 35},
	}

	for _, c := range cases {
		w := catalog.WorkoutTemplate(c.equipment, c.goal)
		if w.Type != c.wantType {
			t.Errorf("%s/%s: type = %q, want %q", c.equipment, c.goal, w.Type, c.wantType)
		}
		if w.DurationMinutes != c.wantDuration {
			t.Errorf("%s/%s: duration = %d, want %d", c.equipment, c.goal, w.DurationMinutes, c.wantDuration)
		}
		if want := float64(c.wantDuration * burnRatePerMinute); w.CaloriesBurned != want {
			t.Errorf("%s/%s: calories_burned = %v, want %v", c.equipment, c.goal, w.CaloriesBurned, want)
		}
		if len(w.Sections) == 0 {
			t.Errorf("%s/%s: no sections", c.equipment, c.goal)
		}
	}

	// muscle-gain gym plan leads with compound lifts
	gym := catalog.WorkoutTemplate("Full gym", "Gain muscle")
	found := false
	for _, s := range gym.Sections {
		if s.Name == "Compound" {
			found = true
		}
	}
	if !found {
		t.Error("Full gym / Gain muscle template has no Compound section")
	}
}
