// Package outbound defines the interfaces for outbound ports (secondary/driven
// adapters): the external systems the application layer talks to.
package outbound

import (
	"context"

	"github.com/mixmas/v2/internal/domain/recipe"
)

// TextGenerator is the outbound port for schema-constrained generation
// against an external large-language-model provider. Submit sends one
// request and returns the raw text of the model's reply (expected to be a
// JSON document matching the declared schema).
type TextGenerator interface {
	Submit(ctx context.Context, req GenerateRequest) (string, error)
}

// GenerateRequest carries one generation call's payload.
type GenerateRequest struct {
	SystemInstruction string
	Prompt            string
	// ResponseSchema is a JSON-schema-shaped constraint the provider
	// enforces on the reply; content quality stays the prompt's job.
	ResponseSchema map[string]any
}

// RecipeArchive is the outbound port for the durable saved-recipe list. It
// sits above KeyValueStore and owns the versioned envelope format, legacy
// migration and invalid-entry filtering; callers see only clean recipe
// slices. Store errors degrade to "may not persist", never to a crash.
type RecipeArchive interface {
	Load(ctx context.Context) ([]recipe.MixRecipe, error)
	Store(ctx context.Context, recipes []recipe.MixRecipe) error
}

// KeyValueStore is the outbound port for durable client-side persistence.
// Implementations fail soft: read misses return ok=false, and callers treat
// write errors as "this session's data may not persist" rather than fatal.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
