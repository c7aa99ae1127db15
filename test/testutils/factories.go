// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/mixmas/v2/internal/domain/recipe"
)

var vibes = []recipe.Vibe{
	recipe.VibeSavory,
	recipe.VibeSweet,
	recipe.VibeSpicy,
	recipe.VibeSaltySweet,
	recipe.VibeChocolatey,
	recipe.VibeHolidaySpice,
}

var baseOptions = []string{
	"Rice Chex", "Corn Chex", "Wheat Chex", "Cheerios", "pretzels", "bagel chips",
}

var mixInOptions = []string{
	"mixed nuts", "M&Ms", "dried cranberries", "mini marshmallows", "sesame sticks",
}

// RecipeFactory builds deterministic domain fixtures from a seed.
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a new recipe factory with seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{
		faker: gofakeit.New(seed),
	}
}

// Preferences returns a valid generation request with randomized picks.
func (f *RecipeFactory) Preferences() recipe.MixPreferences {
	prefs := recipe.MixPreferences{
		Vibe:            vibes[f.faker.Number(0, len(vibes)-1)],
		BaseIngredients: f.pick(baseOptions, f.faker.Number(0, 3)),
		MixIns:          f.pick(mixInOptions, f.faker.Number(0, 2)),
		Dietary:         []string{},
		SpiceLevel:      f.faker.Number(0, 10),
		ChristmasSpirit: f.faker.Bool(),
	}
	prefs.Normalize()
	return prefs
}

// Recipe returns a complete saved-recipe fixture with fresh identity.
func (f *RecipeFactory) Recipe() recipe.MixRecipe {
	prefs := f.Preferences()
	r := recipe.MixRecipe{
		Title:       f.faker.Sentence(3),
		Description: f.faker.Sentence(8),
		PrepTime:    fmt.Sprintf("%d minutes", f.faker.Number(10, 45)),
		Servings:    fmt.Sprintf("%d servings", f.faker.Number(4, 12)),
		Ingredients: []string{
			fmt.Sprintf("%d cups %s", f.faker.Number(1, 4), baseOptions[f.faker.Number(0, len(baseOptions)-1)]),
			fmt.Sprintf("1 cup %s", mixInOptions[f.faker.Number(0, len(mixInOptions)-1)]),
			"6 tbsp butter",
		},
		Instructions: []string{
			"Preheat oven to 250F",
			"Combine dry ingredients in a large bowl",
			"Pour melted butter over the mix and stir",
			"Bake for 1 hour, stirring every 15 minutes",
		},
		ChefTips: []string{f.faker.Sentence(6)},
		Nutrition: &recipe.NutritionFacts{
			Calories:          fmt.Sprintf("%d", f.faker.Number(120, 320)),
			TotalFat:          fmt.Sprintf("%dg", f.faker.Number(4, 18)),
			Sodium:            fmt.Sprintf("%dmg", f.faker.Number(150, 480)),
			TotalCarbohydrate: fmt.Sprintf("%dg", f.faker.Number(12, 40)),
			Protein:           fmt.Sprintf("%dg", f.faker.Number(2, 9)),
		},
		ThemeColor:  f.faker.HexColor(),
		Preferences: &prefs,
	}
	r.ID, r.CreatedAt = recipe.NewIdentity()
	return r
}

func (f *RecipeFactory) pick(options []string, n int) []string {
	if n > len(options) {
		n = len(options)
	}
	out := make([]string, 0, n)
	seen := make(map[string]bool)
	for len(out) < n {
		candidate := options[f.faker.Number(0, len(options)-1)]
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		out = append(out, candidate)
	}
	return out
}
