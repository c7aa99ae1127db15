package generate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixmas/v2/internal/domain/recipe"
)

func validResponseText(t *testing.T) string {
	t.Helper()
	payload := map[string]any{
		"title":         "Midnight Snow Snack",
		"description":   "A cozy mix for cold evenings.",
		"prepTime":      "15 minutes",
		"servings":      "12 cups",
		"ingredients":   []string{"3 cups Rice Chex", "1 cup pretzels"},
		"instructions":  []string{"Preheat your oven to 250°F (120°C).", "Mix and bake for 60 minutes."},
		"chefTips":      []string{"Cool completely before storing."},
		"substitutions": []string{"Use Corn Chex instead of Rice Chex"},
		"nutrition": map[string]string{
			"calories": "180",
			"totalFat": "12g",
			"sodium":   "380mg",
		},
		"themeColor": "#8B4513",
		"difficulty": "easy",
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(raw)
}

func TestParseResponseValid(t *testing.T) {
	prefs := festivePrefs()
	before := time.Now().UnixMilli()
	r, err := ParseResponse(validResponseText(t), prefs)
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.GreaterOrEqual(t, r.CreatedAt, before)
	assert.Equal(t, "Midnight Snow Snack", r.Title)
	assert.Equal(t, []string{"3 cups Rice Chex", "1 cup pretzels"}, r.Ingredients)
	assert.Equal(t, recipe.DifficultyEasy, r.Difficulty)
	require.NotNil(t, r.Nutrition)
	assert.Equal(t, "180", r.Nutrition.Calories)
	require.NotNil(t, r.Preferences)
	assert.Equal(t, recipe.VibeSweet, r.Preferences.Vibe)
}

func TestParseResponseFreshIdentityPerCall(t *testing.T) {
	text := validResponseText(t)
	a, err := ParseResponse(text, festivePrefs())
	require.NoError(t, err)
	b, err := ParseResponse(text, festivePrefs())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseResponseRejectsNonJSON(t *testing.T) {
	_, err := ParseResponse("I'm sorry, I can't produce a recipe today.", festivePrefs())
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "invalid JSON")
}

func TestParseResponseFailsClosed(t *testing.T) {
	cases := map[string]string{
		"missing title":          `{"description":"d","ingredients":["a"],"instructions":["b"]}`,
		"missing description":    `{"title":"t","ingredients":["a"],"instructions":["b"]}`,
		"ingredients not array":  `{"title":"t","description":"d","ingredients":"3 cups","instructions":["b"]}`,
		"instructions not array": `{"title":"t","description":"d","ingredients":["a"],"instructions":null}`,
		"ingredients missing":    `{"title":"t","description":"d","instructions":["b"]}`,
		"top level is an array":  `["not","a","recipe"]`,
		"top level is a string":  `"just text"`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseResponse(text, festivePrefs())
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseResponseIgnoresUnknownDifficulty(t *testing.T) {
	text := `{"title":"t","description":"d","ingredients":["a"],"instructions":["b"],"difficulty":"legendary"}`
	r, err := ParseResponse(text, festivePrefs())
	require.NoError(t, err)
	assert.Empty(t, string(r.Difficulty))
}
