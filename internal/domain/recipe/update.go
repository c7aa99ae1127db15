package recipe

// Update is a partial-field replacement for a saved recipe. Nil fields are
// left untouched; set fields replace the whole value. Identity (ID,
// CreatedAt) and scaling provenance (OriginalServings) are not updatable.
type Update struct {
	Title         *string          `json:"title,omitempty"`
	Description   *string          `json:"description,omitempty"`
	PrepTime      *string          `json:"prepTime,omitempty"`
	Servings      *string          `json:"servings,omitempty"`
	Ingredients   *[]string        `json:"ingredients,omitempty"`
	Instructions  *[]string        `json:"instructions,omitempty"`
	ChefTips      *[]string        `json:"chefTips,omitempty"`
	Substitutions *[]string        `json:"substitutions,omitempty"`
	Nutrition     *NutritionFacts  `json:"nutrition,omitempty"`
	ThemeColor    *string          `json:"themeColor,omitempty"`
	Tags          *[]string        `json:"tags,omitempty"`
	IsFavorite    *bool            `json:"isFavorite,omitempty"`
	Collection    *string          `json:"collection,omitempty"`
	Rating        *int             `json:"rating,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Difficulty    *DifficultyLevel `json:"difficulty,omitempty"`
}

// Apply copies the set fields onto the recipe.
func (u Update) Apply(r *MixRecipe) {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.PrepTime != nil {
		r.PrepTime = *u.PrepTime
	}
	if u.Servings != nil {
		r.Servings = *u.Servings
	}
	if u.Ingredients != nil {
		r.Ingredients = append([]string(nil), (*u.Ingredients)...)
	}
	if u.Instructions != nil {
		r.Instructions = append([]string(nil), (*u.Instructions)...)
	}
	if u.ChefTips != nil {
		r.ChefTips = append([]string(nil), (*u.ChefTips)...)
	}
	if u.Substitutions != nil {
		r.Substitutions = append([]string(nil), (*u.Substitutions)...)
	}
	if u.Nutrition != nil {
		n := *u.Nutrition
		r.Nutrition = &n
	}
	if u.ThemeColor != nil {
		r.ThemeColor = *u.ThemeColor
	}
	if u.Tags != nil {
		r.Tags = append([]string(nil), (*u.Tags)...)
	}
	if u.IsFavorite != nil {
		r.IsFavorite = *u.IsFavorite
	}
	if u.Collection != nil {
		r.Collection = *u.Collection
	}
	if u.Rating != nil {
		r.Rating = *u.Rating
	}
	if u.Notes != nil {
		r.Notes = *u.Notes
	}
	if u.Difficulty != nil {
		r.Difficulty = *u.Difficulty
	}
}
