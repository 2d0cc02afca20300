package openai

import (
	goopenai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = goopenai.GPT3Dot5Turbo

	// DefaultMaxTokens bounds a completion when the caller passes zero.
	DefaultMaxTokens = 500

	// DefaultTemperature is used when the caller passes zero.
	DefaultTemperature = 0.3
)
