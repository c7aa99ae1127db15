package generate

// ResponseSchema returns the structured-output schema submitted with every
// generation request. The provider enforces types and required fields before
// the response reaches the parser; themeColor and difficulty stay optional.
func ResponseSchema() map[string]any {
	stringType := map[string]any{"type": "STRING"}
	stringArray := map[string]any{
		"type":  "ARRAY",
		"items": map[string]any{"type": "STRING"},
	}

	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"title":       stringType,
			"description": stringType,
			"prepTime":    stringType,
			"servings":    stringType,
			"ingredients": map[string]any{
				"type":        "ARRAY",
				"items":       map[string]any{"type": "STRING"},
				"description": "List of ingredients with specific quantities (e.g. '3 cups Rice Chex')",
			},
			"instructions":  stringArray,
			"chefTips":      stringArray,
			"substitutions": stringArray,
			"nutrition": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"calories":          stringType,
					"totalFat":          stringType,
					"saturatedFat":      stringType,
					"transFat":          stringType,
					"cholesterol":       stringType,
					"sodium":            stringType,
					"totalCarbohydrate": stringType,
					"dietaryFiber":      stringType,
					"totalSugars":       stringType,
					"protein":           stringType,
					"vitaminD":          stringType,
					"calcium":           stringType,
					"iron":              stringType,
					"potassium":         stringType,
				},
			},
			"themeColor": stringType,
			"difficulty": stringType,
		},
		"required": []string{
			"title",
			"description",
			"prepTime",
			"servings",
			"ingredients",
			"instructions",
			"chefTips",
			"substitutions",
			"nutrition",
		},
	}
}
