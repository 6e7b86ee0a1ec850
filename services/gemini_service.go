package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"backend/models"
)

// GeminiService asks a text-generation model for meal/workout variants. It is
// the only network-bound collaborator of plan synthesis; every failure here
// is absorbed by the template fallback, so errors are returned, never fatal.
type GeminiService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		model:   "gemini-2.0-flash",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %v", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out geminiResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode gemini response error: %v", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// cleanLLMResponse strips markdown fences and slices out the outermost JSON
// object, since models routinely wrap JSON in prose.
func cleanLLMResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start != -1 && end != -1 && end > start {
		response = response[start : end+1]
	}
	return response
}

// GenerateMeals requests four meal variants, one per slot in breakfast,
// lunch, dinner, snack order. The caller overlays calorie/macro numbers from
// the profile afterwards; only names, times and suggestions are taken from
// the model.
func (g *GeminiService) GenerateMeals(ctx context.Context, profile *models.Profile, date string) ([]models.Meal, error) {
	var sb strings.Builder
	sb.WriteString("You are a professional nutritionist. Suggest one day of meals for this user.\n\n")
	sb.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&sb, "- Diet type: %s\n", profile.DietType)
	if len(profile.Allergies) > 0 {
		fmt.Fprintf(&sb, "- Allergies (avoid completely): %s\n", strings.Join(profile.Allergies, ", "))
	}
	fmt.Fprintf(&sb, "- Cuisine preference: mixed\n")
	fmt.Fprintf(&sb, "- Goal: %s\n", profile.PrimaryGoal)
	sb.WriteString("\nDAILY TARGETS (already fixed, do not change them):\n")
	fmt.Fprintf(&sb, "- Calories: %.0f\n- Protein: %.1fg\n- Carbs: %.1fg\n- Fat: %.1fg\n", profile.CaloriesTarget, profile.ProteinG, profile.CarbsG, profile.FatG)
	fmt.Fprintf(&sb, "\nDate of the plan: %s\n", date)
	sb.WriteString(`
TASK: Return exactly 4 meals, in this order: breakfast, lunch, dinner, snack.
Each meal needs a short appetizing name, a time in 24h HH:MM format, and up
to 4 concrete dish suggestions that fit the diet type and allergies.

Return ONLY a valid JSON object in this exact structure, no additional text:
{
  "meals": [
    {"name": "Healthy Breakfast", "time": "07:30", "calories": 0, "protein_g": 0, "carbs_g": 0, "fat_g": 0, "suggestions": ["dish 1", "dish 2"]},
    {"name": "Balanced Lunch", "time": "12:30", "calories": 0, "protein_g": 0, "carbs_g": 0, "fat_g": 0, "suggestions": ["dish 1"]},
    {"name": "Light Dinner", "time": "19:00", "calories": 0, "protein_g": 0, "carbs_g": 0, "fat_g": 0, "suggestions": ["dish 1"]},
    {"name": "Healthy Snack", "time": "16:00", "calories": 0, "protein_g": 0, "carbs_g": 0, "fat_g": 0, "suggestions": ["dish 1"]}
  ]
}
`)

	raw, err := g.generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Meals []models.Meal `json:"meals"`
	}
	if err := json.Unmarshal([]byte(cleanLLMResponse(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("parse meal response: %v", err)
	}
	if err := validateGeneratedMeals(parsed.Meals); err != nil {
		return nil, err
	}
	for i := range parsed.Meals {
		parsed.Meals[i].Suggestions = dedupeSuggestions(parsed.Meals[i].Suggestions)
	}
	return parsed.Meals, nil
}

// GenerateWorkout requests a workout variant. Duration and calorie-burn
// estimates from the model are kept when plausible.
func (g *GeminiService) GenerateWorkout(ctx context.Context, profile *models.Profile) (*models.Workout, error) {
	var sb strings.Builder
	sb.WriteString("You are a certified fitness coach. Design one workout session for this user.\n\n")
	fmt.Fprintf(&sb, "- Primary goal: %s\n", profile.PrimaryGoal)
	fmt.Fprintf(&sb, "- Equipment access: %s\n", profile.EquipmentAccess)
	fmt.Fprintf(&sb, "- Preferred time: %s\n", profile.PreferredWorkoutTime)
	sb.WriteString(`
The "type" must be "home" or "gym". Each section needs a name, an exercise
list, and either sets+reps or a duration in minutes.

Return ONLY a valid JSON object in this exact structure, no additional text:
{
  "type": "home",
  "duration_minutes": 30,
  "sections": [
    {"name": "Warmup", "exercises": ["Jumping jacks"], "duration": 5},
    {"name": "Main", "exercises": ["Push-ups", "Squats"], "sets": 3, "reps": "12-15"}
  ],
  "calories_burned": 150
}
`)

	raw, err := g.generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	var workout models.Workout
	if err := json.Unmarshal([]byte(cleanLLMResponse(raw)), &workout); err != nil {
		return nil, fmt.Errorf("parse workout response: %v", err)
	}
	if err := validateGeneratedWorkout(&workout); err != nil {
		return nil, err
	}
	if workout.CaloriesBurned == 0 {
		workout.CaloriesBurned = float64(workout.DurationMinutes * burnRatePerMinute)
	}
	return &workout, nil
}

// validateGeneratedMeals enforces the Meal-list schema before a generated
// response is accepted: four slots, every required field present, numeric
// fields non-negative.
func validateGeneratedMeals(meals []models.Meal) error {
	if len(meals) != 4 {
		return fmt.Errorf("expected 4 meals, got %d", len(meals))
	}
	for i, m := range meals {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("meal %d has no name", i)
		}
		if _, err := time.Parse("15:04", m.Time); err != nil {
			return fmt.Errorf("meal %q has invalid time %q", m.Name, m.Time)
		}
		if m.Calories < 0 || m.ProteinG < 0 || m.CarbsG < 0 || m.FatG < 0 {
			return fmt.Errorf("meal %q has negative nutrition values", m.Name)
		}
		if len(m.Suggestions) == 0 {
			return fmt.Errorf("meal %q has no suggestions", m.Name)
		}
	}
	return nil
}

func validateGeneratedWorkout(w *models.Workout) error {
	if w.Type != "home" && w.Type != "gym" {
		return fmt.Errorf("invalid workout type %q", w.Type)
	}
	if w.DurationMinutes <= 0 {
		return fmt.Errorf("invalid workout duration %d", w.DurationMinutes)
	}
	if w.CaloriesBurned < 0 {
		return fmt.Errorf("negative calories_burned")
	}
	if len(w.Sections) == 0 {
		return fmt.Errorf("workout has no sections")
	}
	for _, s := range w.Sections {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("workout section has no name")
		}
		if len(s.Exercises) == 0 {
			return fmt.Errorf("workout section %q has no exercises", s.Name)
		}
		if s.Duration <= 0 && s.Sets <= 0 {
			return fmt.Errorf("workout section %q has neither sets nor duration", s.Name)
		}
	}
	return nil
}

func dedupeSuggestions(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, maxSuggestions)
	for _, s := range in {
		key := strings.TrimSpace(strings.ToLower(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(s))
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
