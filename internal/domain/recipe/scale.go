package recipe

import (
	"fmt"
	"strconv"
)

// ParseServings extracts the leading count from a free-text servings string
// such as "8 servings", "8", or "8-10 servings", defaulting to 1 when no
// number is present.
func ParseServings(servings string) int {
	m := numberPattern.FindString(servings)
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil || n == 0 {
		// A decimal like "8.5" still yields its integer prefix via Atoi
		// failure; fall back to float parsing.
		f, ferr := strconv.ParseFloat(m, 64)
		if ferr != nil || int(f) == 0 {
			return 1
		}
		return int(f)
	}
	return n
}

// Scale rewrites the recipe's ingredient quantities and nutrition facts
// proportionally to targetServings. It is pure: the input recipe is not
// mutated. Callers enforce the [1,100] target bound one layer up; Scale
// computes whatever ratio it is given.
//
// OriginalServings is provenance: it is set on the first scale only and never
// overwritten by later scalings.
func Scale(r MixRecipe, targetServings int) MixRecipe {
	current := ParseServings(r.Servings)
	if current == targetServings {
		return r
	}
	ratio := float64(targetServings) / float64(current)

	out := r.Clone()
	out.Servings = fmt.Sprintf("%d servings", targetServings)
	if out.OriginalServings == "" {
		out.OriginalServings = r.Servings
	}
	for i, line := range out.Ingredients {
		out.Ingredients[i] = scaleIngredient(line, ratio)
	}
	if out.Nutrition != nil {
		scaleNutrition(out.Nutrition, ratio)
	}
	return out
}

// scaleIngredient rewrites the first quantity+unit token in an ingredient
// line. Lines with no recognizable token come back unmodified.
func scaleIngredient(line string, ratio float64) string {
	m, ok := ParseMeasurement(line)
	if !ok {
		return line
	}
	return line[:m.NumStart] + FormatQuantity(m.Value*ratio) + line[m.NumEnd:]
}

// scaleNutrition scales the subset of nutrition fields the app keeps
// proportional. Fiber, sugars, vitamins, and minerals are deliberately left
// unscaled (see DESIGN.md); the unit suffix of each value is untouched.
func scaleNutrition(n *NutritionFacts, ratio float64) {
	n.Calories = scaleNutritionValue(n.Calories, ratio)
	n.TotalFat = scaleNutritionValue(n.TotalFat, ratio)
	if n.SaturatedFat != "" {
		n.SaturatedFat = scaleNutritionValue(n.SaturatedFat, ratio)
	}
	n.Sodium = scaleNutritionValue(n.Sodium, ratio)
	n.TotalCarbohydrate = scaleNutritionValue(n.TotalCarbohydrate, ratio)
	n.Protein = scaleNutritionValue(n.Protein, ratio)
}

// scaleNutritionValue multiplies the single leading number of a value like
// "12g" or "380mg", keeping whatever suffix follows it.
func scaleNutritionValue(value string, ratio float64) string {
	loc := numberPattern.FindStringIndex(value)
	if loc == nil {
		return value
	}
	v, err := strconv.ParseFloat(value[loc[0]:loc[1]], 64)
	if err != nil {
		return value
	}
	scaled := strconv.FormatFloat(v*ratio, 'f', 1, 64)
	return value[:loc[0]] + scaled + value[loc[1]:]
}
