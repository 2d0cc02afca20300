package trend

import "errors"

// Domain errors
var (
	// ErrKeywordRequired - video search needs a keyword
	ErrKeywordRequired = errors.New("trend: keyword is required")

	// ErrTrendsFailed - trend lookup failed with no usable fallback
	ErrTrendsFailed = errors.New("trend: trend lookup failed")
)
