package captions

import "time"

const (
	// DefaultBaseURL is the public timedtext endpoint.
	DefaultBaseURL = "https://www.youtube.com/api/timedtext"

	// DefaultTimeout bounds one track fetch.
	DefaultTimeout = 10 * time.Second
)

// DefaultLanguages is the track preference order.
func DefaultLanguages() []string {
	return []string{"ko", "en"}
}
