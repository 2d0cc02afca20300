package youtube

import "errors"

var (
	ErrAPIKeyRequired = errors.New("youtube: API key is required")
	ErrVideoNotFound  = errors.New("youtube: video not found")
	ErrQuotaExceeded  = errors.New("youtube: quota exceeded")
	ErrAPIError       = errors.New("youtube: API error")
)
