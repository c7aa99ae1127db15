package library

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/domain/recipe"
	"github.com/mixmas/v2/internal/ports/outbound"
	"github.com/mixmas/v2/pkg/async"
)

// persistQuietPeriod batches rapid successive mutations into one durable
// write.
const persistQuietPeriod = 500 * time.Millisecond

// degradedWindow is how long a failed archive write keeps the store
// reporting degraded persistence before a successful retry clears it.
const degradedWindow = 30 * time.Second

// Service is the saved-recipe store. The in-memory list is the source of
// truth for a running session; the archive holds an eventually-consistent
// shadow of it, written after a debounce quiet period. Storage failures are
// logged and retried on the next mutation, never surfaced as blocking
// errors.
type Service struct {
	mu        sync.Mutex
	ledger    *ledger
	archive   outbound.RecipeArchive
	debouncer *async.Debouncer
	degraded  *async.ExpiringFlag
	logger    *zap.Logger

	// persistMu serializes persist runs so a debounced write and an explicit
	// flush never snapshot and commit the same pending mutations twice.
	persistMu sync.Mutex
}

// NewService loads the saved list from the archive once and serves all
// subsequent reads from memory. An unreadable archive starts the session
// with an empty library rather than failing.
func NewService(ctx context.Context, archive outbound.RecipeArchive, logger *zap.Logger) *Service {
	namedLogger := logger.Named("recipe-library")

	initial, err := archive.Load(ctx)
	if err != nil {
		namedLogger.Warn("loading saved recipes failed, starting empty", zap.Error(err))
		initial = nil
	}

	s := &Service{
		ledger:   newLedger(initial),
		archive:  archive,
		degraded: async.NewExpiringFlag(degradedWindow),
		logger:   namedLogger,
	}
	s.debouncer = async.NewDebouncer(persistQuietPeriod, s.persist)

	namedLogger.Info("recipe library loaded", zap.Int("recipes", len(initial)))
	return s
}

// Recipes returns a snapshot of the saved list, newest first.
func (s *Service) Recipes() []recipe.MixRecipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.ledger.view())
}

// Get returns the saved recipe with the given id.
func (s *Service) Get(id string) (recipe.MixRecipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.ledger.view()
	for i := range list {
		if list[i].ID == id {
			return list[i].Clone(), true
		}
	}
	return recipe.MixRecipe{}, false
}

// Save prepends the recipe to the list. Idempotent by id: saving an id that
// already exists is a no-op, first write wins for identity. Use Update to
// change fields of a saved recipe.
func (s *Service) Save(r recipe.MixRecipe) {
	s.mutate(func(list []recipe.MixRecipe) []recipe.MixRecipe {
		for i := range list {
			if list[i].ID == r.ID {
				return list
			}
		}
		return append([]recipe.MixRecipe{r.Clone()}, list...)
	})
}

// Update applies a partial-field update to a saved recipe.
func (s *Service) Update(id string, updates recipe.Update) error {
	found := false
	s.mutate(func(list []recipe.MixRecipe) []recipe.MixRecipe {
		for i := range list {
			if list[i].ID == id {
				updates.Apply(&list[i])
				found = true
				break
			}
		}
		return list
	})
	if !found {
		return recipe.ErrRecipeNotFound
	}
	return nil
}

// Delete removes a saved recipe.
func (s *Service) Delete(id string) error {
	found := false
	s.mutate(func(list []recipe.MixRecipe) []recipe.MixRecipe {
		out := list[:0]
		for i := range list {
			if list[i].ID == id {
				found = true
				continue
			}
			out = append(out, list[i])
		}
		return out
	})
	if !found {
		return recipe.ErrRecipeNotFound
	}
	return nil
}

// ToggleFavorite flips the favorite bit. Unknown ids no-op.
func (s *Service) ToggleFavorite(id string) {
	s.mutate(func(list []recipe.MixRecipe) []recipe.MixRecipe {
		for i := range list {
			if list[i].ID == id {
				list[i].IsFavorite = !list[i].IsFavorite
				break
			}
		}
		return list
	})
}

// AddTag inserts a tag with set semantics. Unknown ids no-op.
func (s *Service) AddTag(id, tag string) {
	s.mutate(func(list []recipe.MixRecipe) []recipe.MixRecipe {
		for i := range list {
			if list[i].ID == id {
				if !list[i].HasTag(tag) {
					list[i].Tags = append(list[i].Tags, tag)
				}
				break
			}
		}
		return list
	})
}

// RemoveTag removes a tag with set semantics. Unknown ids no-op.
func (s *Service) RemoveTag(id, tag string) {
	s.mutate(func(list []recipe.MixRecipe) []recipe.MixRecipe {
		for i := range list {
			if list[i].ID == id {
				tags := list[i].Tags[:0]
				for _, t := range list[i].Tags {
					if t != tag {
						tags = append(tags, t)
					}
				}
				list[i].Tags = tags
				break
			}
		}
		return list
	})
}

// SetCollection assigns the recipe to a collection; nil clears it. Unknown
// ids no-op.
func (s *Service) SetCollection(id string, collection *string) {
	s.mutate(func(list []recipe.MixRecipe) []recipe.MixRecipe {
		for i := range list {
			if list[i].ID == id {
				if collection == nil {
					list[i].Collection = ""
				} else {
					list[i].Collection = *collection
				}
				break
			}
		}
		return list
	})
}

// SetRating records a 1-5 star rating.
func (s *Service) SetRating(id string, rating int) error {
	if rating < 1 || rating > 5 {
		return recipe.ErrInvalidRating
	}
	found := false
	s.mutate(func(list []recipe.MixRecipe) []recipe.MixRecipe {
		for i := range list {
			if list[i].ID == id {
				list[i].Rating = rating
				found = true
				break
			}
		}
		return list
	})
	if !found {
		return recipe.ErrRecipeNotFound
	}
	return nil
}

// Flush forces any pending debounced write to run now. Called on shutdown.
func (s *Service) Flush() {
	s.debouncer.Flush()
}

// Reload discards pending mutations and resynchronizes the in-memory list
// from the archive.
func (s *Service) Reload(ctx context.Context) error {
	recipes, err := s.archive.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.rollback()
	s.ledger = newLedger(recipes)
	return nil
}

// mutate applies one atomic read-then-write to the in-memory list and
// schedules a durable write.
func (s *Service) mutate(fn func([]recipe.MixRecipe) []recipe.MixRecipe) {
	s.mu.Lock()
	s.ledger.apply(fn)
	s.mu.Unlock()
	s.debouncer.Trigger()
}

// PersistenceDegraded reports whether a recent archive write failed and has
// not yet been retried successfully. The in-memory list is still
// authoritative while this is set.
func (s *Service) PersistenceDegraded() bool {
	return s.degraded.IsSet()
}

// persist writes a snapshot of the working copy to the archive. On success
// the snapshotted mutations commit; on failure they stay pending so the next
// mutation or flush retries, and the session keeps running on the in-memory
// truth.
func (s *Service) persist() {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	if !s.ledger.dirty() {
		s.mu.Unlock()
		return
	}
	snapshot, applied := s.ledger.snapshot()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.archive.Store(ctx, snapshot); err != nil {
		s.degraded.Set()
		s.logger.Warn("persisting saved recipes failed, session data may not persist",
			zap.Int("recipes", len(snapshot)),
			zap.Error(err),
		)
		return
	}

	// Commit retires only the snapshotted mutations. Anything applied while
	// the write was in flight stays pending for the next persist or flush.
	s.mu.Lock()
	s.ledger.commit(snapshot, applied)
	s.mu.Unlock()
	s.degraded.Clear()
	s.logger.Debug("saved recipes persisted", zap.Int("recipes", len(snapshot)))
}
