package ai

import (
	"context"

	"resumelens/internal/types"
)

// AIProvider interface for different AI implementations.
// All methods return token usage information - callers can ignore it if not needed
type AIProvider interface {
	ParseResume(ctx context.Context, input types.ParseResumeInput) (types.ParseResumeOutput, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
