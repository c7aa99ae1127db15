package recipe

import "encoding/json"

// IsValidRecipe is the shape gate applied to externally sourced data at every
// trust boundary: storage load, share-link decode, and pre-save filtering. It
// verifies presence and primitive/array shape of the mandatory fields only; it
// does not inspect array element types, string emptiness, or numeric ranges.
func IsValidRecipe(v any) bool {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return false
	}
	if !isString(m["id"]) ||
		!isString(m["title"]) ||
		!isString(m["description"]) ||
		!isString(m["prepTime"]) ||
		!isString(m["servings"]) {
		return false
	}
	if !isArray(m["ingredients"]) || !isArray(m["instructions"]) {
		return false
	}
	return isNumber(m["createdAt"])
}

// IsValidPreferences is the shape gate for persisted form preferences.
func IsValidPreferences(v any) bool {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return false
	}
	return isString(m["vibe"]) &&
		isArray(m["baseIngredients"]) &&
		isArray(m["mixIns"]) &&
		isArray(m["dietary"]) &&
		isNumber(m["spiceLevel"]) &&
		isBool(m["christmasSpirit"]) &&
		isBool(m["thcInfused"])
}

// IsValidRecipeJSON applies the recipe shape gate to a raw JSON document.
func IsValidRecipeJSON(raw []byte) bool {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return IsValidRecipe(probe)
}

// IsValidPreferencesJSON applies the preferences shape gate to a raw JSON
// document.
func IsValidPreferencesJSON(raw []byte) bool {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return IsValidPreferences(probe)
}

// DecodeRecipe unmarshals raw JSON and accepts it only if it passes the shape
// gate. The boolean result is false, never an error: callers at trust
// boundaries degrade silently.
func DecodeRecipe(raw []byte) (MixRecipe, bool) {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return MixRecipe{}, false
	}
	if !IsValidRecipe(probe) {
		return MixRecipe{}, false
	}
	var r MixRecipe
	if err := json.Unmarshal(raw, &r); err != nil {
		return MixRecipe{}, false
	}
	return r, true
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func isArray(v any) bool {
	_, ok := v.([]any)
	return ok
}

// JSON numbers decode to float64 under encoding/json's default rules.
func isNumber(v any) bool {
	_, ok := v.(float64)
	return ok
}
