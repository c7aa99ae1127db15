package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/application/session"
	"github.com/mixmas/v2/internal/domain/recipe"
	"github.com/mixmas/v2/internal/ports/inbound"
	apperrors "github.com/mixmas/v2/pkg/errors"
)

// Bounds on the serving count accepted by the scale endpoint. The scaler
// itself computes whatever ratio it is given; this is the one layer that
// rejects out-of-range targets.
const (
	minServings = 1
	maxServings = 100
)

// RecipeHandlers serves generation and scaling requests
type RecipeHandlers struct {
	generator inbound.RecipeGenerator
	session   *session.Service
	logger    *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(generator inbound.RecipeGenerator, sess *session.Service, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		generator: generator,
		session:   sess,
		logger:    logger,
	}
}

type generateRequest struct {
	Preferences recipe.MixPreferences `json:"preferences"`
}

// Generate handles POST /api/v1/recipes/generate
func (h *RecipeHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	result, err := h.generator.GenerateRecipe(r.Context(), req.Preferences)
	if err != nil {
		if appErr, ok := apperrors.IsAppError(err); ok {
			h.session.SetGenerateError(appErr.Message)
		}
		writeError(w, h.logger, err)
		return
	}

	h.session.SetGenerated(r.Context(), result)
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: result})
}

type batchRequest struct {
	Preferences recipe.MixPreferences `json:"preferences"`
	Count       int                   `json:"count"`
}

// GenerateBatch handles POST /api/v1/recipes/generate/batch
func (h *RecipeHandlers) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	results, err := h.generator.GenerateBatch(r.Context(), req.Preferences, req.Count)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: results})
}

type scaleRequest struct {
	Recipe         recipe.MixRecipe `json:"recipe"`
	TargetServings int              `json:"targetServings"`
}

// Scale handles POST /api/v1/recipes/scale
func (h *RecipeHandlers) Scale(w http.ResponseWriter, r *http.Request) {
	var req scaleRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}
	if req.TargetServings < minServings || req.TargetServings > maxServings {
		writeError(w, h.logger, recipe.ErrInvalidServings)
		return
	}

	scaled := recipe.Scale(req.Recipe, req.TargetServings)

	// Keep the working recipe in step when the scaled one is being viewed.
	if current, ok := h.session.Generated(); ok && current.ID == scaled.ID {
		h.session.ReplaceGenerated(scaled)
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: scaled})
}

// SpiceInfo handles GET /api/v1/spice/{level}
func (h *RecipeHandlers) SpiceInfo(w http.ResponseWriter, r *http.Request) {
	level, ok := intPathParam(r, "level")
	if !ok {
		writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{Success: false, Error: "invalid spice level"})
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: recipe.SpiceInfoFor(level)})
}
