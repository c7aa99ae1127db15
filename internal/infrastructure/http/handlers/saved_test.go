package handlers

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/domain/recipe"
)

func savedRouter(lib *fakeLibrary) chi.Router {
	h := NewSavedHandlers(lib, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/saved", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Save)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Patch("/", h.Update)
			r.Delete("/", h.Delete)
			r.Post("/favorite", h.ToggleFavorite)
			r.Post("/tags", h.AddTag)
			r.Delete("/tags/{tag}", h.RemoveTag)
			r.Put("/collection", h.SetCollection)
			r.Put("/rating", h.SetRating)
		})
	})
	return r
}

func seededLibrary() *fakeLibrary {
	lib := &fakeLibrary{}
	spicy := sampleRecipe("lib-1", "Firecracker Mix")
	spicy.Tags = []string{"party"}
	sweet := sampleRecipe("lib-2", "Caramel Crunch")
	sweet.IsFavorite = true
	sweet.Rating = 5
	lib.Save(spicy)
	lib.Save(sweet)
	return lib
}

func TestListReturnsAllRecipes(t *testing.T) {
	router := savedRouter(seededLibrary())

	rec := doJSON(t, router, http.MethodGet, "/saved/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []recipe.MixRecipe
	dataAs(t, decodeResponse(t, rec), &got)
	assert.Len(t, got, 2)
}

func TestListAppliesQueryFilters(t *testing.T) {
	router := savedRouter(seededLibrary())

	rec := doJSON(t, router, http.MethodGet, "/saved/?q=caramel", nil)
	var got []recipe.MixRecipe
	dataAs(t, decodeResponse(t, rec), &got)
	require.Len(t, got, 1)
	assert.Equal(t, "lib-2", got[0].ID)

	rec = doJSON(t, router, http.MethodGet, "/saved/?favorites=true", nil)
	dataAs(t, decodeResponse(t, rec), &got)
	require.Len(t, got, 1)
	assert.Equal(t, "lib-2", got[0].ID)

	rec = doJSON(t, router, http.MethodGet, "/saved/?tags=party", nil)
	dataAs(t, decodeResponse(t, rec), &got)
	require.Len(t, got, 1)
	assert.Equal(t, "lib-1", got[0].ID)
}

func TestListSortsByTitle(t *testing.T) {
	router := savedRouter(seededLibrary())

	rec := doJSON(t, router, http.MethodGet, "/saved/?sort=title-asc", nil)
	var got []recipe.MixRecipe
	dataAs(t, decodeResponse(t, rec), &got)
	require.Len(t, got, 2)
	assert.Equal(t, "Caramel Crunch", got[0].Title)
}

func TestSaveIsIdempotent(t *testing.T) {
	lib := &fakeLibrary{}
	router := savedRouter(lib)

	first := sampleRecipe("dup-1", "Original Title")
	rec := doJSON(t, router, http.MethodPost, "/saved/", first)
	require.Equal(t, http.StatusCreated, rec.Code)

	altered := sampleRecipe("dup-1", "Changed Title")
	rec = doJSON(t, router, http.MethodPost, "/saved/", altered)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got recipe.MixRecipe
	dataAs(t, decodeResponse(t, rec), &got)
	assert.Equal(t, "Original Title", got.Title)
	assert.Len(t, lib.Recipes(), 1)
}

func TestSaveRequiresID(t *testing.T) {
	router := savedRouter(&fakeLibrary{})

	rec := doJSON(t, router, http.MethodPost, "/saved/", recipe.MixRecipe{Title: "No ID"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUnknownRecipeIs404(t *testing.T) {
	router := savedRouter(&fakeLibrary{})

	rec := doJSON(t, router, http.MethodGet, "/saved/missing/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateAppliesPartialChanges(t *testing.T) {
	router := savedRouter(seededLibrary())

	rec := doJSON(t, router, http.MethodPatch, "/saved/lib-1/", map[string]any{
		"title": "Renamed Mix",
		"notes": "Extra crispy next time",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got recipe.MixRecipe
	dataAs(t, decodeResponse(t, rec), &got)
	assert.Equal(t, "Renamed Mix", got.Title)
	assert.Equal(t, "Extra crispy next time", got.Notes)
	assert.Equal(t, "A crunchy test mix", got.Description)
}

func TestDeleteRemovesRecipe(t *testing.T) {
	lib := seededLibrary()
	router := savedRouter(lib)

	rec := doJSON(t, router, http.MethodDelete, "/saved/lib-1/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, lib.Recipes(), 1)

	rec = doJSON(t, router, http.MethodDelete, "/saved/lib-1/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleFavorite(t *testing.T) {
	router := savedRouter(seededLibrary())

	rec := doJSON(t, router, http.MethodPost, "/saved/lib-1/favorite", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got recipe.MixRecipe
	dataAs(t, decodeResponse(t, rec), &got)
	assert.True(t, got.IsFavorite)

	rec = doJSON(t, router, http.MethodPost, "/saved/missing/favorite", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTagLifecycle(t *testing.T) {
	router := savedRouter(seededLibrary())

	rec := doJSON(t, router, http.MethodPost, "/saved/lib-2/tags", tagRequest{Tag: "gift"})
	require.Equal(t, http.StatusOK, rec.Code)

	var got recipe.MixRecipe
	dataAs(t, decodeResponse(t, rec), &got)
	assert.Equal(t, []string{"gift"}, got.Tags)

	// Adding the same tag again is a no-op.
	rec = doJSON(t, router, http.MethodPost, "/saved/lib-2/tags", tagRequest{Tag: "gift"})
	dataAs(t, decodeResponse(t, rec), &got)
	assert.Equal(t, []string{"gift"}, got.Tags)

	rec = doJSON(t, router, http.MethodDelete, "/saved/lib-2/tags/gift", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got = recipe.MixRecipe{}
	dataAs(t, decodeResponse(t, rec), &got)
	assert.Empty(t, got.Tags)
}

func TestAddTagRejectsBlank(t *testing.T) {
	router := savedRouter(seededLibrary())

	rec := doJSON(t, router, http.MethodPost, "/saved/lib-1/tags", tagRequest{Tag: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetAndClearCollection(t *testing.T) {
	router := savedRouter(seededLibrary())

	name := "Holiday Gifts"
	rec := doJSON(t, router, http.MethodPut, "/saved/lib-1/collection", collectionRequest{Collection: &name})
	require.Equal(t, http.StatusOK, rec.Code)

	var got recipe.MixRecipe
	dataAs(t, decodeResponse(t, rec), &got)
	assert.Equal(t, "Holiday Gifts", got.Collection)

	rec = doJSON(t, router, http.MethodPut, "/saved/lib-1/collection", collectionRequest{})
	require.Equal(t, http.StatusOK, rec.Code)
	got = recipe.MixRecipe{}
	dataAs(t, decodeResponse(t, rec), &got)
	assert.Empty(t, got.Collection)
}

func TestSetRatingBounds(t *testing.T) {
	router := savedRouter(seededLibrary())

	rec := doJSON(t, router, http.MethodPut, "/saved/lib-1/rating", ratingRequest{Rating: 4})
	require.Equal(t, http.StatusOK, rec.Code)

	var got recipe.MixRecipe
	dataAs(t, decodeResponse(t, rec), &got)
	assert.Equal(t, 4, got.Rating)

	for _, bad := range []int{0, 6, -1} {
		rec = doJSON(t, router, http.MethodPut, "/saved/lib-1/rating", ratingRequest{Rating: bad})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "rating %d", bad)
	}
}
