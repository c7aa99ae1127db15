package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/domain/recipe"
	"github.com/mixmas/v2/internal/ports/inbound"
)

// SavedHandlers serves the saved-recipe library
type SavedHandlers struct {
	library inbound.RecipeLibrary
	logger  *zap.Logger
}

// NewSavedHandlers creates a new saved-recipe handlers instance
func NewSavedHandlers(library inbound.RecipeLibrary, logger *zap.Logger) *SavedHandlers {
	return &SavedHandlers{
		library: library,
		logger:  logger,
	}
}

// List handles GET /api/v1/saved. Query parameters narrow and order the
// listing: q, tags (comma separated), flavor, dietary (comma separated),
// favorites, collection, difficulty, min_rating, sort.
func (h *SavedHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := recipe.Filters{
		SearchTerm:    q.Get("q"),
		Tags:          splitParam(q.Get("tags")),
		FlavorProfile: recipe.Vibe(q.Get("flavor")),
		Dietary:       splitParam(q.Get("dietary")),
		FavoriteOnly:  q.Get("favorites") == "true",
		Collection:    q.Get("collection"),
		Difficulty:    recipe.DifficultyLevel(q.Get("difficulty")),
	}
	if v, err := strconv.Atoi(q.Get("min_rating")); err == nil {
		filters.MinRating = v
	}

	results := recipe.Filter(h.library.Recipes(), filters)
	results = recipe.Sort(results, recipe.SortOption(q.Get("sort")))

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: results})
}

// Save handles POST /api/v1/saved. Saving an already-saved recipe is a
// no-op; the stored copy is returned either way.
func (h *SavedHandlers) Save(w http.ResponseWriter, r *http.Request) {
	var body recipe.MixRecipe
	if !decodeBody(w, r, h.logger, &body) {
		return
	}
	if body.ID == "" {
		writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{Success: false, Error: "recipe id is required"})
		return
	}

	h.library.Save(body)
	stored, _ := h.library.Get(body.ID)
	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: stored})
}

// Get handles GET /api/v1/saved/{id}
func (h *SavedHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	stored, ok := h.library.Get(id)
	if !ok {
		writeError(w, h.logger, recipe.ErrRecipeNotFound)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: stored})
}

// Update handles PATCH /api/v1/saved/{id}
func (h *SavedHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var updates recipe.Update
	if !decodeBody(w, r, h.logger, &updates) {
		return
	}

	if err := h.library.Update(id, updates); err != nil {
		writeError(w, h.logger, err)
		return
	}
	stored, _ := h.library.Get(id)
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: stored})
}

// Delete handles DELETE /api/v1/saved/{id}
func (h *SavedHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.library.Delete(id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "recipe deleted"})
}

// ToggleFavorite handles POST /api/v1/saved/{id}/favorite
func (h *SavedHandlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.library.Get(id); !ok {
		writeError(w, h.logger, recipe.ErrRecipeNotFound)
		return
	}

	h.library.ToggleFavorite(id)
	stored, _ := h.library.Get(id)
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: stored})
}

type tagRequest struct {
	Tag string `json:"tag"`
}

// AddTag handles POST /api/v1/saved/{id}/tags
func (h *SavedHandlers) AddTag(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req tagRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}
	if strings.TrimSpace(req.Tag) == "" {
		writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{Success: false, Error: "tag is required"})
		return
	}
	if _, ok := h.library.Get(id); !ok {
		writeError(w, h.logger, recipe.ErrRecipeNotFound)
		return
	}

	h.library.AddTag(id, req.Tag)
	stored, _ := h.library.Get(id)
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: stored})
}

// RemoveTag handles DELETE /api/v1/saved/{id}/tags/{tag}
func (h *SavedHandlers) RemoveTag(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tag := chi.URLParam(r, "tag")
	if _, ok := h.library.Get(id); !ok {
		writeError(w, h.logger, recipe.ErrRecipeNotFound)
		return
	}

	h.library.RemoveTag(id, tag)
	stored, _ := h.library.Get(id)
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: stored})
}

type collectionRequest struct {
	Collection *string `json:"collection"`
}

// SetCollection handles PUT /api/v1/saved/{id}/collection. A null or
// absent collection clears the assignment.
func (h *SavedHandlers) SetCollection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req collectionRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}
	if _, ok := h.library.Get(id); !ok {
		writeError(w, h.logger, recipe.ErrRecipeNotFound)
		return
	}

	h.library.SetCollection(id, req.Collection)
	stored, _ := h.library.Get(id)
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: stored})
}

type ratingRequest struct {
	Rating int `json:"rating"`
}

// SetRating handles PUT /api/v1/saved/{id}/rating
func (h *SavedHandlers) SetRating(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req ratingRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}
	if _, ok := h.library.Get(id); !ok {
		writeError(w, h.logger, recipe.ErrRecipeNotFound)
		return
	}

	if err := h.library.SetRating(id, req.Rating); err != nil {
		writeError(w, h.logger, err)
		return
	}
	stored, _ := h.library.Get(id)
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: stored})
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
