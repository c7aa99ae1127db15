package generate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mixmas/v2/internal/domain/recipe"
	apperrors "github.com/mixmas/v2/pkg/errors"
)

// MaxBatchSize bounds how many recipes one batch request may produce.
const MaxBatchSize = 10

// GenerateBatch produces count recipes concurrently from the same
// preferences. Results are returned in request order. The batch is
// all-or-nothing: the first failure cancels the remaining generations and
// the whole call returns that error.
func (s *Service) GenerateBatch(ctx context.Context, prefs recipe.MixPreferences, count int) ([]recipe.MixRecipe, error) {
	if count < 1 || count > MaxBatchSize {
		return nil, apperrors.NewBadRequestError("batch count must be between 1 and 10").
			WithCause(recipe.ErrInvalidBatchCount).
			WithMetadata("count", count)
	}
	if err := prefs.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error()).WithCause(err)
	}

	results := make([]recipe.MixRecipe, count)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			r, err := s.GenerateRecipe(gctx, prefs)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
