package ports

import (
	"context"

	"github.com/bnema/careerbot/internal/domain"
)

// ModelProvider is a hosted large-language-model API.
type ModelProvider interface {
	// Complete blocks until the whole reply is available.
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
	// Stream calls onDelta for every text fragment in arrival order. The
	// caller concatenates the fragments.
	Stream(ctx context.Context, req domain.CompletionRequest, onDelta func(string)) error
}
