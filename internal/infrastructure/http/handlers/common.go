// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/domain/recipe"
	apperrors "github.com/mixmas/v2/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps application errors onto HTTP responses. AppErrors carry
// their own status and stable user-facing message; domain sentinel errors
// map to the obvious statuses; anything else is a 500 with a generic body.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if appErr, ok := apperrors.IsAppError(err); ok {
		writeJSON(w, logger, appErr.StatusCode(), APIResponse{
			Success: false,
			Error:   appErr.Message,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, recipe.ErrRecipeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, recipe.ErrInvalidRating),
		errors.Is(err, recipe.ErrInvalidServings),
		errors.Is(err, recipe.ErrInvalidBatchCount):
		status = http.StatusBadRequest
	default:
		logger.Error("unhandled error", zap.Error(err))
	}
	writeJSON(w, logger, status, APIResponse{Success: false, Error: err.Error()})
}

func intPathParam(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, false
	}
	return v, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *zap.Logger, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, logger, http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return false
	}
	return true
}
