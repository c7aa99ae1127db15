// Package localstore owns the versioned storage envelopes above the raw
// key-value port: saved recipes, form preferences, and view state. All
// reads and writes fail soft; a storage failure degrades to "this session's
// data may not persist", never to an error the caller must handle.
package localstore

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/domain/recipe"
	"github.com/mixmas/v2/internal/ports/outbound"
)

// Storage keys with versioning.
const (
	keyRecipes     = "mixmas_saved_recipes_v2"
	keyPreferences = "mixmas_form_preferences_v1"
	keyViewState   = "mixmas_view_state_v1"

	// legacyKeyRecipes held the unversioned v1 list; removed on quota
	// pressure and superseded on migration.
	legacyKeyRecipes = "mixmas_saved_recipes_v1"
)

// storageVersion is the current saved-recipes envelope version.
const storageVersion = 2

// recipesEnvelope is the durable saved-recipes record.
type recipesEnvelope struct {
	Version   int               `json:"version"`
	Recipes   []json.RawMessage `json:"recipes"`
	Timestamp int64             `json:"timestamp"`
}

// preferencesEnvelope is the durable form-preferences record.
type preferencesEnvelope struct {
	Version     int             `json:"version"`
	Preferences json.RawMessage `json:"preferences"`
	Timestamp   int64           `json:"timestamp"`
}

// viewEnvelope is the durable view-state record.
type viewEnvelope struct {
	View      string `json:"view"`
	Timestamp int64  `json:"timestamp"`
}

// Store reads and writes the application's durable records.
type Store struct {
	kv     outbound.KeyValueStore
	logger *zap.Logger
}

// New creates a local store over the given key-value backend.
func New(kv outbound.KeyValueStore, logger *zap.Logger) *Store {
	return &Store{kv: kv, logger: logger.Named("localstore")}
}

// Load returns the saved recipe list. It accepts both the versioned
// envelope and the legacy bare-array format; a legacy list is migrated to
// the envelope immediately. Entries failing the shape gate are dropped with
// a logged count. Any read or parse failure yields an empty list.
func (s *Store) Load(ctx context.Context) ([]recipe.MixRecipe, error) {
	data, ok, err := s.kv.Get(ctx, keyRecipes)
	if err != nil {
		s.logger.Warn("failed to read from storage", zap.Error(err))
		return nil, nil
	}
	if !ok {
		return nil, nil
	}

	var envelope recipesEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Recipes != nil {
		return s.filterValid(envelope.Recipes, "load"), nil
	}

	// Legacy format: the list stored as a bare array.
	var legacy []json.RawMessage
	if err := json.Unmarshal(data, &legacy); err == nil {
		recipes := s.filterValid(legacy, "load")
		if len(recipes) > 0 {
			// Migrate to the versioned envelope.
			if err := s.Store(ctx, recipes); err != nil {
				s.logger.Warn("legacy recipe migration failed", zap.Error(err))
			}
		}
		return recipes, nil
	}

	s.logger.Warn("failed to load recipes", zap.String("key", keyRecipes))
	return nil, nil
}

// Store writes the saved recipe list as a versioned envelope. Invalid
// entries are filtered before writing. On failure a best-effort cleanup of
// the legacy key frees quota before giving up silently.
func (s *Store) Store(ctx context.Context, recipes []recipe.MixRecipe) error {
	valid := make([]json.RawMessage, 0, len(recipes))
	dropped := 0
	for i := range recipes {
		raw, err := json.Marshal(recipes[i])
		if err != nil || !recipe.IsValidRecipeJSON(raw) {
			dropped++
			continue
		}
		valid = append(valid, raw)
	}
	if dropped > 0 {
		s.logger.Warn("filtered out invalid recipes before saving", zap.Int("dropped", dropped))
	}

	envelope := recipesEnvelope{
		Version:   storageVersion,
		Recipes:   valid,
		Timestamp: time.Now().UnixMilli(),
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	if err := s.kv.Set(ctx, keyRecipes, data); err != nil {
		s.logger.Warn("storage write failed, attempting to free space", zap.Error(err))
		s.freeSpace(ctx)
		if retryErr := s.kv.Set(ctx, keyRecipes, data); retryErr != nil {
			return retryErr
		}
	}
	return nil
}

// SavePreferences persists form preferences under a v1 envelope. Invalid
// preferences are rejected wholesale, not partially saved.
func (s *Store) SavePreferences(ctx context.Context, prefs recipe.MixPreferences) {
	raw, err := json.Marshal(prefs)
	if err != nil || !recipe.IsValidPreferencesJSON(raw) {
		s.logger.Warn("invalid preferences object, not saving to storage")
		return
	}

	envelope := preferencesEnvelope{
		Version:     1,
		Preferences: raw,
		Timestamp:   time.Now().UnixMilli(),
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return
	}
	if err := s.kv.Set(ctx, keyPreferences, data); err != nil {
		s.logger.Warn("failed to save preferences", zap.Error(err))
	}
}

// LoadPreferences returns the persisted form preferences, or ok=false if
// absent or invalid.
func (s *Store) LoadPreferences(ctx context.Context) (recipe.MixPreferences, bool) {
	data, ok, err := s.kv.Get(ctx, keyPreferences)
	if err != nil || !ok {
		return recipe.MixPreferences{}, false
	}

	var envelope preferencesEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Preferences == nil {
		return recipe.MixPreferences{}, false
	}
	if !recipe.IsValidPreferencesJSON(envelope.Preferences) {
		return recipe.MixPreferences{}, false
	}

	var prefs recipe.MixPreferences
	if err := json.Unmarshal(envelope.Preferences, &prefs); err != nil {
		return recipe.MixPreferences{}, false
	}
	prefs.Normalize()
	return prefs, true
}

// SaveView persists the current view name.
func (s *Store) SaveView(ctx context.Context, view string) {
	data, err := json.Marshal(viewEnvelope{View: view, Timestamp: time.Now().UnixMilli()})
	if err != nil {
		return
	}
	if err := s.kv.Set(ctx, keyViewState, data); err != nil {
		s.logger.Warn("failed to save view state", zap.Error(err))
	}
}

// LoadView returns the persisted view name, or ok=false if absent or
// malformed. Callers decide whether the name is a known view.
func (s *Store) LoadView(ctx context.Context) (string, bool) {
	data, ok, err := s.kv.Get(ctx, keyViewState)
	if err != nil || !ok {
		return "", false
	}
	var envelope viewEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.View == "" {
		return "", false
	}
	return envelope.View, true
}

// filterValid keeps only entries passing the recipe shape gate and decodes
// them, logging the dropped count.
func (s *Store) filterValid(raw []json.RawMessage, operation string) []recipe.MixRecipe {
	recipes := make([]recipe.MixRecipe, 0, len(raw))
	dropped := 0
	for _, entry := range raw {
		if r, ok := recipe.DecodeRecipe(entry); ok {
			recipes = append(recipes, r)
		} else {
			dropped++
		}
	}
	if dropped > 0 {
		s.logger.Warn("filtered out invalid recipes",
			zap.String("operation", operation),
			zap.Int("dropped", dropped),
		)
	}
	return recipes
}

// freeSpace removes known-legacy keys, ignoring errors.
func (s *Store) freeSpace(ctx context.Context) {
	_ = s.kv.Delete(ctx, legacyKeyRecipes)
}
