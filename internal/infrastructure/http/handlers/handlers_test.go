package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/application/session"
	"github.com/mixmas/v2/internal/domain/recipe"
)

// fakeGenerator satisfies inbound.RecipeGenerator with canned results.
type fakeGenerator struct {
	recipe  recipe.MixRecipe
	batch   []recipe.MixRecipe
	err     error
	lastReq recipe.MixPreferences
}

func (f *fakeGenerator) GenerateRecipe(ctx context.Context, prefs recipe.MixPreferences) (recipe.MixRecipe, error) {
	f.lastReq = prefs
	if f.err != nil {
		return recipe.MixRecipe{}, f.err
	}
	return f.recipe, nil
}

func (f *fakeGenerator) GenerateBatch(ctx context.Context, prefs recipe.MixPreferences, count int) ([]recipe.MixRecipe, error) {
	f.lastReq = prefs
	if f.err != nil {
		return nil, f.err
	}
	return f.batch, nil
}

// fakeLibrary is an in-memory inbound.RecipeLibrary for handler tests.
type fakeLibrary struct {
	mu      sync.Mutex
	recipes []recipe.MixRecipe
}

func (f *fakeLibrary) Recipes() []recipe.MixRecipe {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recipe.MixRecipe(nil), f.recipes...)
}

func (f *fakeLibrary) Get(id string) (recipe.MixRecipe, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.recipes {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return recipe.MixRecipe{}, false
}

func (f *fakeLibrary) Save(r recipe.MixRecipe) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.recipes {
		if existing.ID == r.ID {
			return
		}
	}
	f.recipes = append([]recipe.MixRecipe{r.Clone()}, f.recipes...)
}

func (f *fakeLibrary) Update(id string, updates recipe.Update) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			updates.Apply(&f.recipes[i])
			return nil
		}
	}
	return recipe.ErrRecipeNotFound
}

func (f *fakeLibrary) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			f.recipes = append(f.recipes[:i], f.recipes[i+1:]...)
			return nil
		}
	}
	return recipe.ErrRecipeNotFound
}

func (f *fakeLibrary) ToggleFavorite(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			f.recipes[i].IsFavorite = !f.recipes[i].IsFavorite
			return
		}
	}
}

func (f *fakeLibrary) AddTag(id, tag string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recipes {
		if f.recipes[i].ID == id && !f.recipes[i].HasTag(tag) {
			f.recipes[i].Tags = append(f.recipes[i].Tags, tag)
			return
		}
	}
}

func (f *fakeLibrary) RemoveTag(id, tag string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			tags := f.recipes[i].Tags[:0]
			for _, t := range f.recipes[i].Tags {
				if t != tag {
					tags = append(tags, t)
				}
			}
			f.recipes[i].Tags = tags
			return
		}
	}
}

func (f *fakeLibrary) SetCollection(id string, collection *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			if collection == nil {
				f.recipes[i].Collection = ""
			} else {
				f.recipes[i].Collection = *collection
			}
			return
		}
	}
}

func (f *fakeLibrary) SetRating(id string, rating int) error {
	if rating < 1 || rating > 5 {
		return recipe.ErrInvalidRating
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			f.recipes[i].Rating = rating
			return nil
		}
	}
	return nil
}

// fakeViewStore keeps the persisted view name in memory.
type fakeViewStore struct {
	view string
	ok   bool
}

func (f *fakeViewStore) LoadView(ctx context.Context) (string, bool) { return f.view, f.ok }
func (f *fakeViewStore) SaveView(ctx context.Context, view string)   { f.view, f.ok = view, true }

// fakeDecoder never decodes anything; session tests here exercise the HTTP
// surface only.
type fakeDecoder struct{}

func (fakeDecoder) Decode(param string) (recipe.MixRecipe, bool) {
	return recipe.MixRecipe{}, false
}

func newTestSession() *session.Service {
	return session.NewService(&fakeViewStore{}, fakeDecoder{}, zap.NewNop())
}

func sampleRecipe(id, title string) recipe.MixRecipe {
	return recipe.MixRecipe{
		ID:           id,
		Title:        title,
		Description:  "A crunchy test mix",
		PrepTime:     "20 minutes",
		Servings:     "8 servings",
		Ingredients:  []string{"3 cups Rice Chex", "1 cup pretzels"},
		Instructions: []string{"Mix everything", "Bake at 250F"},
		ChefTips:     []string{"Stir every 15 minutes"},
		CreatedAt:    1700000000000,
	}
}

func doJSON(t *testing.T, router chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func dataAs(t *testing.T, resp APIResponse, dst any) {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dst))
}
