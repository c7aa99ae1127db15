// Package session holds per-session navigation state: the current view, the
// ephemeral generated recipe, and the last generation outcome. Nothing here
// is durable except the view name, which is restored on the next session.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/domain/recipe"
)

// View names the navigable application states. Edit is a non-persisted
// working mode layered over the recipe view.
type View string

const (
	ViewGenerator View = "generator"
	ViewRecipe    View = "recipe"
	ViewSaved     View = "saved"
	ViewNotFound  View = "notFound"
	ViewEdit      View = "edit"
)

// KnownView reports whether name is one of the five navigable views.
// Anything else read from storage is ignored.
func KnownView(name string) bool {
	switch View(name) {
	case ViewGenerator, ViewRecipe, ViewSaved, ViewNotFound, ViewEdit:
		return true
	}
	return false
}

// GenerateState is the transient request/response envelope for the last
// generation attempt. Never persisted.
type GenerateState struct {
	Error  string
	Recipe *recipe.MixRecipe
}

// ViewStore persists the current view name across sessions. Implementations
// fail soft.
type ViewStore interface {
	LoadView(ctx context.Context) (string, bool)
	SaveView(ctx context.Context, view string)
}

// ShareDecoder turns a share-link query value into a recipe, or reports
// failure silently.
type ShareDecoder interface {
	Decode(param string) (recipe.MixRecipe, bool)
}

// Service is the session state machine.
type Service struct {
	mu        sync.Mutex
	view      View
	generated *recipe.MixRecipe
	genState  GenerateState

	store   ViewStore
	decoder ShareDecoder
	logger  *zap.Logger
}

// NewService starts a session on the generator view.
func NewService(store ViewStore, decoder ShareDecoder, logger *zap.Logger) *Service {
	return &Service{
		view:    ViewGenerator,
		store:   store,
		decoder: decoder,
		logger:  logger.Named("session"),
	}
}

// Start restores session state: the persisted view first, then the share
// link, which takes priority. A decodable share payload routes to the
// recipe view with the decoded recipe as the working result; a present but
// undecodable payload routes to notFound rather than being ignored.
// shareParam is the raw share query value, sharePresent whether the
// parameter appeared at all.
func (s *Service) Start(ctx context.Context, shareParam string, sharePresent bool) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	if saved, ok := s.store.LoadView(ctx); ok && KnownView(saved) {
		s.view = View(saved)
	}

	if sharePresent {
		if r, ok := s.decoder.Decode(shareParam); ok {
			s.generated = &r
			s.view = ViewRecipe
			s.logger.Info("restored shared recipe", zap.String("recipe_id", r.ID))
		} else {
			s.view = ViewNotFound
			s.logger.Warn("share link present but undecodable")
		}
		s.store.SaveView(ctx, string(s.view))
	}
	return s.view
}

// CurrentView returns the active view.
func (s *Service) CurrentView() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SetView navigates to a view and persists the choice. Unknown names are
// rejected.
func (s *Service) SetView(ctx context.Context, v View) bool {
	if !KnownView(string(v)) {
		return false
	}
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
	s.store.SaveView(ctx, string(v))
	return true
}

// SetGenerated records a successful generation: the recipe becomes the
// working result and navigation lands on the recipe view.
func (s *Service) SetGenerated(ctx context.Context, r recipe.MixRecipe) {
	s.mu.Lock()
	s.generated = &r
	s.genState = GenerateState{Recipe: &r}
	s.view = ViewRecipe
	s.mu.Unlock()
	s.store.SaveView(ctx, string(ViewRecipe))
}

// SetGenerateError records a failed generation attempt. The view does not
// change; the error is a dismissible inline message.
func (s *Service) SetGenerateError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.genState = GenerateState{Error: message}
}

// ClearGenerateError dismisses the inline error.
func (s *Service) ClearGenerateError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.genState.Error = ""
}

// Generated returns the current working recipe, which may or may not be
// saved into the library.
func (s *Service) Generated() (recipe.MixRecipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generated == nil {
		return recipe.MixRecipe{}, false
	}
	return s.generated.Clone(), true
}

// ReplaceGenerated swaps the working recipe in place, used after scaling or
// editing the currently viewed recipe.
func (s *Service) ReplaceGenerated(r recipe.MixRecipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generated = &r
}

// GenerateOutcome returns the last generation outcome.
func (s *Service) GenerateOutcome() GenerateState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.genState
	if s.genState.Recipe != nil {
		r := s.genState.Recipe.Clone()
		out.Recipe = &r
	}
	return out
}
