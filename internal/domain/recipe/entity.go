// Package recipe contains the core domain model for generated snack-mix recipes.
package recipe

import (
	"time"

	"github.com/google/uuid"
)

// DifficultyLevel classifies how demanding a recipe is to prepare.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// Valid reports whether the level is one of the known difficulty values.
func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// NutritionFacts holds per-serving nutrition values. Each value is a
// unit-suffixed string (e.g. "12g", "380mg") because the source of truth is
// free text from the model and from proportional scaling; numeric fidelity is
// not guaranteed.
type NutritionFacts struct {
	Calories          string `json:"calories"`
	TotalFat          string `json:"totalFat"`
	SaturatedFat      string `json:"saturatedFat,omitempty"`
	TransFat          string `json:"transFat,omitempty"`
	Cholesterol       string `json:"cholesterol,omitempty"`
	Sodium            string `json:"sodium"`
	TotalCarbohydrate string `json:"totalCarbohydrate"`
	DietaryFiber      string `json:"dietaryFiber,omitempty"`
	TotalSugars       string `json:"totalSugars,omitempty"`
	Protein           string `json:"protein"`
	VitaminD          string `json:"vitaminD,omitempty"`
	Calcium           string `json:"calcium,omitempty"`
	Iron              string `json:"iron,omitempty"`
	Potassium         string `json:"potassium,omitempty"`
}

// MixRecipe is the central persisted entity: a generated or saved recipe.
//
// Identity (ID, CreatedAt) is assigned exactly once when the recipe is decoded
// from a model response or a share link, and is never reused. Content fields
// come verbatim from the model. Annotation fields (Tags, IsFavorite,
// Collection, Rating, Notes) are user-mutable after creation, independent of
// content. OriginalServings is scaling provenance: set on the first scale,
// never overwritten.
type MixRecipe struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PrepTime    string `json:"prepTime"`
	// Servings is free text such as "12 cups" or "8-10 servings".
	Servings      string          `json:"servings"`
	Ingredients   []string        `json:"ingredients"`
	Instructions  []string        `json:"instructions"`
	ChefTips      []string        `json:"chefTips"`
	Substitutions []string        `json:"substitutions,omitempty"`
	Nutrition     *NutritionFacts `json:"nutrition,omitempty"`
	CreatedAt     int64           `json:"createdAt"`
	ThemeColor    string          `json:"themeColor,omitempty"`

	Tags       []string        `json:"tags,omitempty"`
	IsFavorite bool            `json:"isFavorite,omitempty"`
	Collection string          `json:"collection,omitempty"`
	Rating     int             `json:"rating,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Difficulty DifficultyLevel `json:"difficulty,omitempty"`

	OriginalServings string `json:"originalServings,omitempty"`

	// Preferences optionally records the generation request that produced
	// this recipe, for filtering in the saved-recipe library.
	Preferences *MixPreferences `json:"preferences,omitempty"`
}

// NewIdentity returns a fresh unique recipe ID and creation timestamp in
// milliseconds. IDs are opaque and never reused.
func NewIdentity() (string, int64) {
	return uuid.NewString(), time.Now().UnixMilli()
}

// Clone returns a deep copy of the recipe. Store mutations operate on copies
// so optimistic snapshots stay independent of committed state.
func (r MixRecipe) Clone() MixRecipe {
	out := r
	out.Ingredients = append([]string(nil), r.Ingredients...)
	out.Instructions = append([]string(nil), r.Instructions...)
	out.ChefTips = append([]string(nil), r.ChefTips...)
	out.Substitutions = append([]string(nil), r.Substitutions...)
	out.Tags = append([]string(nil), r.Tags...)
	if r.Nutrition != nil {
		n := *r.Nutrition
		out.Nutrition = &n
	}
	if r.Preferences != nil {
		p := r.Preferences.Clone()
		out.Preferences = &p
	}
	return out
}

// HasTag reports whether the recipe carries the given tag.
func (r *MixRecipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
