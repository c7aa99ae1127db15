package library

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/domain/recipe"
)

// fakeArchive is an in-memory RecipeArchive with failure injection.
type fakeArchive struct {
	mu      sync.Mutex
	stored  []recipe.MixRecipe
	stores  int
	loadErr error
	failSet bool
	// onStore, when set, runs at the start of Store outside the lock so
	// tests can interleave mutations with an in-flight write.
	onStore func()
}

func (f *fakeArchive) Load(context.Context) ([]recipe.MixRecipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]recipe.MixRecipe(nil), f.stored...), nil
}

func (f *fakeArchive) Store(_ context.Context, recipes []recipe.MixRecipe) error {
	f.mu.Lock()
	hook := f.onStore
	f.mu.Unlock()
	if hook != nil {
		hook()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.stores++
	if f.failSet {
		return errors.New("storage quota exceeded")
	}
	f.stored = append([]recipe.MixRecipe(nil), recipes...)
	return nil
}

func (f *fakeArchive) storeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stores
}

func testRecipe(id, title string) recipe.MixRecipe {
	return recipe.MixRecipe{
		ID:           id,
		Title:        title,
		Description:  "test",
		PrepTime:     "15 minutes",
		Servings:     "12 cups",
		Ingredients:  []string{"3 cups Rice Chex"},
		Instructions: []string{"Mix."},
		CreatedAt:    1700000000000,
	}
}

func newTestService(t *testing.T, archive *fakeArchive) *Service {
	t.Helper()
	return NewService(context.Background(), archive, zap.NewNop())
}

func TestLoadsArchiveOnce(t *testing.T) {
	archive := &fakeArchive{stored: []recipe.MixRecipe{testRecipe("a", "First")}}
	svc := newTestService(t, archive)

	recipes := svc.Recipes()
	require.Len(t, recipes, 1)
	assert.Equal(t, "First", recipes[0].Title)
}

func TestStartsEmptyWhenLoadFails(t *testing.T) {
	archive := &fakeArchive{loadErr: errors.New("corrupt record")}
	svc := newTestService(t, archive)
	assert.Empty(t, svc.Recipes())
}

func TestSaveIsIdempotentByID(t *testing.T) {
	svc := newTestService(t, &fakeArchive{})

	r := testRecipe("a", "Original Title")
	svc.Save(r)

	dup := r
	dup.Title = "Changed Title"
	svc.Save(dup)

	recipes := svc.Recipes()
	require.Len(t, recipes, 1, "second save of the same id must not grow the list")
	assert.Equal(t, "Original Title", recipes[0].Title, "first write wins")
}

func TestSavePrependsNewestFirst(t *testing.T) {
	svc := newTestService(t, &fakeArchive{})
	svc.Save(testRecipe("a", "Older"))
	svc.Save(testRecipe("b", "Newer"))

	recipes := svc.Recipes()
	require.Len(t, recipes, 2)
	assert.Equal(t, "Newer", recipes[0].Title)
	assert.Equal(t, "Older", recipes[1].Title)
}

func TestUpdateAppliesPartialFields(t *testing.T) {
	svc := newTestService(t, &fakeArchive{})
	svc.Save(testRecipe("a", "Before"))

	title := "After"
	notes := "extra crunchy"
	require.NoError(t, svc.Update("a", recipe.Update{Title: &title, Notes: &notes}))

	got, ok := svc.Get("a")
	require.True(t, ok)
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, "extra crunchy", got.Notes)
	assert.Equal(t, "15 minutes", got.PrepTime, "untouched fields stay put")

	assert.ErrorIs(t, svc.Update("missing", recipe.Update{Title: &title}), recipe.ErrRecipeNotFound)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t, &fakeArchive{})
	svc.Save(testRecipe("a", "Keep"))
	svc.Save(testRecipe("b", "Drop"))

	require.NoError(t, svc.Delete("b"))
	recipes := svc.Recipes()
	require.Len(t, recipes, 1)
	assert.Equal(t, "a", recipes[0].ID)

	assert.ErrorIs(t, svc.Delete("b"), recipe.ErrRecipeNotFound)
}

func TestToggleFavorite(t *testing.T) {
	svc := newTestService(t, &fakeArchive{})
	svc.Save(testRecipe("a", "Mix"))

	svc.ToggleFavorite("a")
	got, _ := svc.Get("a")
	assert.True(t, got.IsFavorite)

	svc.ToggleFavorite("a")
	got, _ = svc.Get("a")
	assert.False(t, got.IsFavorite)

	// Unknown ids no-op.
	svc.ToggleFavorite("missing")
}

func TestTagsHaveSetSemantics(t *testing.T) {
	svc := newTestService(t, &fakeArchive{})
	svc.Save(testRecipe("a", "Mix"))

	svc.AddTag("a", "party")
	svc.AddTag("a", "party")
	svc.AddTag("a", "gift")

	got, _ := svc.Get("a")
	assert.Equal(t, []string{"party", "gift"}, got.Tags)

	svc.RemoveTag("a", "party")
	svc.RemoveTag("a", "party")
	got, _ = svc.Get("a")
	assert.Equal(t, []string{"gift"}, got.Tags)

	svc.AddTag("missing", "party")
	svc.RemoveTag("missing", "party")
}

func TestSetCollection(t *testing.T) {
	svc := newTestService(t, &fakeArchive{})
	svc.Save(testRecipe("a", "Mix"))

	holiday := "Holiday 2025"
	svc.SetCollection("a", &holiday)
	got, _ := svc.Get("a")
	assert.Equal(t, "Holiday 2025", got.Collection)

	svc.SetCollection("a", nil)
	got, _ = svc.Get("a")
	assert.Empty(t, got.Collection)
}

func TestSetRating(t *testing.T) {
	svc := newTestService(t, &fakeArchive{})
	svc.Save(testRecipe("a", "Mix"))

	require.NoError(t, svc.SetRating("a", 5))
	got, _ := svc.Get("a")
	assert.Equal(t, 5, got.Rating)

	assert.ErrorIs(t, svc.SetRating("a", 0), recipe.ErrInvalidRating)
	assert.ErrorIs(t, svc.SetRating("a", 6), recipe.ErrInvalidRating)
	assert.ErrorIs(t, svc.SetRating("missing", 3), recipe.ErrRecipeNotFound)
}

func TestFlushPersistsPendingMutations(t *testing.T) {
	archive := &fakeArchive{}
	svc := newTestService(t, archive)

	svc.Save(testRecipe("a", "One"))
	svc.Save(testRecipe("b", "Two"))
	svc.Flush()

	assert.Equal(t, 1, archive.storeCount(), "rapid saves coalesce into one write")
	require.Len(t, archive.stored, 2)
	assert.Equal(t, "b", archive.stored[0].ID)
}

func TestStorageFailureKeepsSessionTruth(t *testing.T) {
	archive := &fakeArchive{failSet: true}
	svc := newTestService(t, archive)

	svc.Save(testRecipe("a", "Mix"))
	svc.Flush()

	// The write failed but the session keeps its data.
	assert.Len(t, svc.Recipes(), 1)
	assert.Empty(t, archive.stored)
	assert.True(t, svc.PersistenceDegraded())

	// Once storage recovers, the next flush lands the pending state.
	archive.mu.Lock()
	archive.failSet = false
	archive.mu.Unlock()
	svc.Flush()
	assert.Len(t, archive.stored, 1)
	assert.False(t, svc.PersistenceDegraded())
}

func TestMutationDuringInFlightWriteStillPersists(t *testing.T) {
	archive := &fakeArchive{}
	entered := make(chan struct{})
	release := make(chan struct{})
	archive.onStore = func() {
		close(entered)
		<-release
	}
	svc := newTestService(t, archive)

	svc.Save(testRecipe("a", "First"))

	flushed := make(chan struct{})
	go func() {
		svc.Flush()
		close(flushed)
	}()

	// While the first write is blocked inside the archive, a second save
	// lands. Committing the first write must not swallow it.
	<-entered
	svc.Save(testRecipe("b", "Second"))

	archive.mu.Lock()
	archive.onStore = nil
	archive.mu.Unlock()
	close(release)
	<-flushed

	// The first write carried only "a".
	archive.mu.Lock()
	firstWrite := append([]recipe.MixRecipe(nil), archive.stored...)
	archive.mu.Unlock()
	require.Len(t, firstWrite, 1)
	assert.Equal(t, "a", firstWrite[0].ID)

	// The shutdown flush still sees "b" pending and writes it.
	svc.Flush()
	archive.mu.Lock()
	finalWrite := append([]recipe.MixRecipe(nil), archive.stored...)
	archive.mu.Unlock()
	require.Len(t, finalWrite, 2)
	assert.Equal(t, "b", finalWrite[0].ID)
	assert.Equal(t, "a", finalWrite[1].ID)
}

func TestReloadResynchronizesFromArchive(t *testing.T) {
	archive := &fakeArchive{stored: []recipe.MixRecipe{testRecipe("a", "Durable")}}
	svc := newTestService(t, archive)

	svc.Save(testRecipe("b", "Pending"))
	require.NoError(t, svc.Reload(context.Background()))

	recipes := svc.Recipes()
	require.Len(t, recipes, 1)
	assert.Equal(t, "Durable", recipes[0].Title)
}

func TestRecipesReturnsIndependentSnapshot(t *testing.T) {
	svc := newTestService(t, &fakeArchive{})
	svc.Save(testRecipe("a", "Mix"))

	snapshot := svc.Recipes()
	snapshot[0].Title = "Mutated"
	snapshot[0].Ingredients[0] = "tampered"

	got, _ := svc.Get("a")
	assert.Equal(t, "Mix", got.Title)
	assert.Equal(t, "3 cups Rice Chex", got.Ingredients[0])
}
