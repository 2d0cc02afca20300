package openai

import (
	goopenai "github.com/sashabaranov/go-openai"
)

// OpenAIConfig is the configuration for the OpenAI client.
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// CompletionInput is one chat completion call.
type CompletionInput struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

type openaiImpl struct {
	client *goopenai.Client
	model  string
}
