// Package inbound defines the interfaces for inbound ports (primary/driving
// adapters): the operations the HTTP surface invokes on the application.
package inbound

import (
	"context"

	"github.com/mixmas/v2/internal/domain/recipe"
)

// RecipeGenerator turns user preferences into validated recipes via the
// external model.
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, prefs recipe.MixPreferences) (recipe.MixRecipe, error)
	GenerateBatch(ctx context.Context, prefs recipe.MixPreferences, count int) ([]recipe.MixRecipe, error)
}

// RecipeLibrary is the saved-recipe store exposed to the UI layer. Save is
// idempotent by id; tag operations are set semantics; all mutations no-op
// safely when the id is unknown unless documented otherwise.
type RecipeLibrary interface {
	Recipes() []recipe.MixRecipe
	Get(id string) (recipe.MixRecipe, bool)
	Save(r recipe.MixRecipe)
	Update(id string, updates recipe.Update) error
	Delete(id string) error
	ToggleFavorite(id string)
	AddTag(id, tag string)
	RemoveTag(id, tag string)
	SetCollection(id string, collection *string)
	SetRating(id string, rating int) error
}
