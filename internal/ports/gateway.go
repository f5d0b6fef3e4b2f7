package ports

import (
	"context"

	"github.com/quasarbright/clanker-translate/internal/domain"
)

// Gateway performs a single attempt against the model gateway. Implementations
// classify failures into domain.ClassifiedError and pass context cancellation
// through unchanged; retries live in the translator usecase, not here.
type Gateway interface {
	Translate(ctx context.Context, req domain.TranslationRequest) (domain.TranslationResponse, error)
	ListModels(ctx context.Context, apiKey string) ([]domain.ModelInfo, error)
	ValidateKey(ctx context.Context, apiKey string) error
}
