package captions

import (
	"context"

	pkghttp "insight-srv/pkg/http"
	pkglog "insight-srv/pkg/log"
)

// ICaptions defines the interface for fetching video transcripts from
// the public timedtext endpoint. Implementations are safe for
// concurrent use.
type ICaptions interface {
	// GetTranscript fetches the caption track for a video, trying the
	// configured languages in order. The bool reports whether any track
	// was found; a missing track is not an error.
	GetTranscript(ctx context.Context, videoID string) (string, bool, error)
}

// New creates a new captions client.
func New(l pkglog.Logger, cfg CaptionsConfig) ICaptions {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = DefaultLanguages()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &captionsImpl{
		l:      l,
		config: cfg,
		client: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: cfg.Timeout,
			Retries: 0,
		}),
	}
}
