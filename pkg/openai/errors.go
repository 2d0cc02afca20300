package openai

import "errors"

var (
	ErrEmptyPrompt = errors.New("openai: prompt is empty")
	ErrNoChoices   = errors.New("openai: completion returned no choices")
)
