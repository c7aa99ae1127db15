package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/application/session"
	"github.com/mixmas/v2/internal/domain/recipe"
	"github.com/mixmas/v2/internal/infrastructure/persistence/localstore"
)

// SessionHandlers serves navigation state, form preferences, and the last
// generation outcome
type SessionHandlers struct {
	session *session.Service
	store   *localstore.Store
	logger  *zap.Logger
}

// NewSessionHandlers creates a new session handlers instance
func NewSessionHandlers(sess *session.Service, store *localstore.Store, logger *zap.Logger) *SessionHandlers {
	return &SessionHandlers{
		session: sess,
		store:   store,
		logger:  logger,
	}
}

type viewResponse struct {
	View string `json:"view"`
}

// GetView handles GET /api/v1/session/view
func (h *SessionHandlers) GetView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    viewResponse{View: string(h.session.CurrentView())},
	})
}

type setViewRequest struct {
	View string `json:"view"`
}

// SetView handles PUT /api/v1/session/view
func (h *SessionHandlers) SetView(w http.ResponseWriter, r *http.Request) {
	var req setViewRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	if !h.session.SetView(r.Context(), session.View(req.View)) {
		writeJSON(w, h.logger, http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   "unknown view",
		})
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    viewResponse{View: req.View},
	})
}

type outcomeResponse struct {
	Error  string            `json:"error,omitempty"`
	Recipe *recipe.MixRecipe `json:"recipe,omitempty"`
}

// Outcome handles GET /api/v1/session/outcome, reporting the last
// generation attempt for this session.
func (h *SessionHandlers) Outcome(w http.ResponseWriter, r *http.Request) {
	state := h.session.GenerateOutcome()
	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    outcomeResponse{Error: state.Error, Recipe: state.Recipe},
	})
}

// ClearOutcome handles DELETE /api/v1/session/outcome
func (h *SessionHandlers) ClearOutcome(w http.ResponseWriter, r *http.Request) {
	h.session.ClearGenerateError()
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "outcome cleared"})
}

// GetPreferences handles GET /api/v1/session/preferences. Missing or
// unreadable stored preferences come back as the defaults.
func (h *SessionHandlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, ok := h.store.LoadPreferences(r.Context())
	if !ok {
		prefs = recipe.DefaultPreferences()
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: prefs})
}

// PutPreferences handles PUT /api/v1/session/preferences. Persistence
// fails soft; the submitted preferences are always echoed back.
func (h *SessionHandlers) PutPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs recipe.MixPreferences
	if !decodeBody(w, r, h.logger, &prefs) {
		return
	}
	prefs.Normalize()

	h.store.SavePreferences(r.Context(), prefs)
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: prefs})
}
