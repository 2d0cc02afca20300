package openai

import (
	"context"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
)

// IOpenAI defines the interface for OpenAI chat completions.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	Complete(ctx context.Context, input CompletionInput) (string, error)
}

// New creates a new OpenAI client. Model defaults to DefaultModel if empty.
// APIKey must be set; callers that hold no client select the heuristic tier.
func New(cfg OpenAIConfig) (IOpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &openaiImpl{
		client: goopenai.NewClient(cfg.APIKey),
		model:  cfg.Model,
	}, nil
}
