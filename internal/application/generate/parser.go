package generate

import (
	"encoding/json"
	"fmt"

	"github.com/mixmas/v2/internal/domain/recipe"
)

// ParseError reports why a provider response could not be turned into a
// recipe. It distinguishes malformed JSON from a structurally incomplete
// payload so callers can log the category without exposing raw model output.
type ParseError struct {
	Reason string
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse recipe response: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("parse recipe response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// ParseResponse converts raw provider text into a complete recipe. The
// payload must be valid JSON with a non-empty title and description and
// array-typed ingredients and instructions; anything else fails closed.
// Identity and provenance (id, createdAt, preferences) are assigned here,
// never taken from the model.
func ParseResponse(text string, prefs recipe.MixPreferences) (recipe.MixRecipe, error) {
	var payload struct {
		Title         string                `json:"title"`
		Description   string                `json:"description"`
		PrepTime      string                `json:"prepTime"`
		Servings      string                `json:"servings"`
		Ingredients   json.RawMessage       `json:"ingredients"`
		Instructions  json.RawMessage       `json:"instructions"`
		ChefTips      []string               `json:"chefTips"`
		Substitutions []string               `json:"substitutions"`
		Nutrition     *recipe.NutritionFacts `json:"nutrition"`
		ThemeColor    string                 `json:"themeColor"`
		Difficulty    string                 `json:"difficulty"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return recipe.MixRecipe{}, &ParseError{Reason: "invalid JSON response", Cause: err}
	}

	ingredients, ok := decodeStringArray(payload.Ingredients)
	if !ok {
		return recipe.MixRecipe{}, &ParseError{Reason: "invalid recipe structure: ingredients is not an array"}
	}
	instructions, ok := decodeStringArray(payload.Instructions)
	if !ok {
		return recipe.MixRecipe{}, &ParseError{Reason: "invalid recipe structure: instructions is not an array"}
	}
	if payload.Title == "" || payload.Description == "" {
		return recipe.MixRecipe{}, &ParseError{Reason: "invalid recipe structure: missing title or description"}
	}

	id, createdAt := recipe.NewIdentity()
	provenance := prefs.Clone()
	r := recipe.MixRecipe{
		ID:            id,
		Title:         payload.Title,
		Description:   payload.Description,
		PrepTime:      payload.PrepTime,
		Servings:      payload.Servings,
		Ingredients:   ingredients,
		Instructions:  instructions,
		ChefTips:      payload.ChefTips,
		Substitutions: payload.Substitutions,
		Nutrition:     payload.Nutrition,
		CreatedAt:     createdAt,
		ThemeColor:    payload.ThemeColor,
		Preferences:   &provenance,
	}
	if d := recipe.DifficultyLevel(payload.Difficulty); d.Valid() {
		r.Difficulty = d
	}
	return r, nil
}

// decodeStringArray rejects null and non-array values rather than treating
// them as empty, matching the fail-closed validation contract.
func decodeStringArray(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	if out == nil {
		return nil, false
	}
	return out, true
}
