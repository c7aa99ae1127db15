package recipe

import "errors"

// Domain errors for recipe operations.

var (
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidServings   = errors.New("target servings must be between 1 and 100")
	ErrInvalidBatchCount = errors.New("batch count must be between 1 and 10")
)
