package generate

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/domain/recipe"
	"github.com/mixmas/v2/internal/ports/outbound"
	apperrors "github.com/mixmas/v2/pkg/errors"
)

// Service orchestrates recipe generation: validate preferences, build the
// prompt, submit to the text generator, parse and stamp the result.
type Service struct {
	generator outbound.TextGenerator
	logger    *zap.Logger
}

// NewService creates a new generation service.
func NewService(generator outbound.TextGenerator, logger *zap.Logger) *Service {
	return &Service{
		generator: generator,
		logger:    logger.Named("generate-service"),
	}
}

// GenerateRecipe produces a complete recipe for the given preferences.
// Errors are returned as AppErrors with stable user messages; the underlying
// provider error is logged but never surfaced to callers.
func (s *Service) GenerateRecipe(ctx context.Context, prefs recipe.MixPreferences) (recipe.MixRecipe, error) {
	if err := prefs.Validate(); err != nil {
		return recipe.MixRecipe{}, apperrors.NewValidationError(err.Error()).WithCause(err)
	}

	req := outbound.GenerateRequest{
		SystemInstruction: SystemInstruction(),
		Prompt:            BuildPrompt(prefs),
		ResponseSchema:    ResponseSchema(),
	}

	text, err := s.generator.Submit(ctx, req)
	if err != nil {
		s.logger.Error("recipe generation request failed",
			zap.String("vibe", string(prefs.Vibe)),
			zap.Error(err),
		)
		return recipe.MixRecipe{}, classifyProviderError(err)
	}
	if text == "" {
		s.logger.Warn("provider returned empty response",
			zap.String("vibe", string(prefs.Vibe)),
		)
		return recipe.MixRecipe{}, apperrors.NewEmptyResponseError()
	}

	result, err := ParseResponse(text, prefs)
	if err != nil {
		s.logger.Warn("provider response failed validation",
			zap.String("vibe", string(prefs.Vibe)),
			zap.Error(err),
		)
		return recipe.MixRecipe{}, apperrors.NewInvalidRecipeError(err)
	}

	s.logger.Info("recipe generated",
		zap.String("recipe_id", result.ID),
		zap.String("title", result.Title),
		zap.String("vibe", string(prefs.Vibe)),
	)
	return result, nil
}

// classifyProviderError maps transport failures onto the stable user-facing
// error taxonomy. An AppError from the provider layer passes through as-is.
func classifyProviderError(err error) error {
	if appErr, ok := apperrors.IsAppError(err); ok {
		// Unclassified provider failures still surface the generic retry
		// message; the classified categories pass through untouched.
		if appErr.Code == apperrors.CodeExternalServiceError {
			return apperrors.NewGenerationFailedError(appErr)
		}
		return appErr
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"):
		return apperrors.NewMissingAPIKeyError().WithCause(err)
	case strings.Contains(msg, "quota"), strings.Contains(msg, "rate limit"):
		return apperrors.NewProviderQuotaError(err)
	case strings.Contains(msg, "invalid"):
		return apperrors.NewInvalidRecipeError(err)
	default:
		return apperrors.NewGenerationFailedError(err)
	}
}
