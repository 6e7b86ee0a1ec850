package utils

import (
	"errors"
	"math"
)

// representativeAge maps questionnaire age buckets to the age substituted
// into Mifflin-St Jeor. Unknown buckets fall back to 30.
var representativeAge = map[string]float64{
	"18-25": 22,
	"26-35": 30,
	"36-45": 40,
	"46+":   50,
}

// activityFactors is the single source of truth for TDEE multipliers.
// Unknown levels fall back to the Light factor.
var activityFactors = map[string]float64{
	"Sedentary":   1.2,
	"Light":       1.375,
	"Moderate":    1.55,
	"Very Active": 1.725,
}

// Round1 rounds to one decimal, half away from zero. Every calculator in
// this file rounds through here so results are reproducible bit-for-bit.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, errors.New("height must be positive")
	}
	h := heightCm / 100.0 // to meters
	return Round1(weightKg / (h * h)), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// CalculateBMR implements Mifflin-St Jeor with a representative age per
// bucket. Female and other genders share the -161 constant.
func CalculateBMR(weightKg, heightCm float64, ageGroup, gender string) float64 {
	age, ok := representativeAge[ageGroup]
	if !ok {
		age = 30
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*age
	if gender == "Male" || gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return Round1(bmr)
}

func CalculateTDEE(bmr float64, activityLevel string) float64 {
	factor, ok := activityFactors[activityLevel]
	if !ok {
		factor = 1.375
	}
	return Round1(bmr * factor)
}

type MacroTargets struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// CalculateMacros derives the daily calorie and macro gram targets. The goal
// adjusts total calories and protein density; fat takes 27.5% of calories;
// carbs absorb the remainder. Carb grams can go negative for pathological
// inputs (very low TDEE, very high weight) and are deliberately not guarded.
func CalculateMacros(tdee float64, primaryGoal string, weightKg float64) MacroTargets {
	calories := tdee
	proteinPerKg := 1.8
	switch primaryGoal {
	case "Lose weight":
		calories = tdee * 0.85 // 15% deficit
		proteinPerKg = 2.0
	case "Gain muscle":
		calories = tdee * 1.15 // 15% surplus
		proteinPerKg = 2.2
	}

	proteinG := weightKg * proteinPerKg
	fatCalories := calories * 0.275
	fatG := fatCalories / 9
	carbG := (calories - proteinG*4 - fatCalories) / 4

	return MacroTargets{
		Calories: math.Round(calories),
		ProteinG: Round1(proteinG),
		CarbsG:   Round1(carbG),
		FatG:     Round1(fatG),
	}
}

// HydrationTarget returns the daily water goal in ml: max(1800, weight*32)
// plus a fixed 1000ml allowance for one hour of assumed exercise.
func HydrationTarget(weightKg float64) float64 {
	return math.Max(1800, weightKg*32) + 1000
}
