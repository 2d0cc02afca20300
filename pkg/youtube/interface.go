package youtube

import (
	"context"

	pkghttp "insight-srv/pkg/http"
	pkglog "insight-srv/pkg/log"
)

// IYouTube defines the interface for the YouTube Data API v3 client.
// Implementations are safe for concurrent use.
type IYouTube interface {
	// GetVideo fetches snippet, contentDetails and statistics for one video.
	GetVideo(ctx context.Context, videoID string) (Video, error)
	// ListCommentThreads fetches top-level comments ordered by relevance,
	// paginating until limit comments are collected or pages run out.
	// limit < 0 means all available.
	ListCommentThreads(ctx context.Context, videoID string, limit int) ([]Comment, error)
	// Search runs search.list with the given options and returns video results.
	Search(ctx context.Context, opts SearchOptions) ([]SearchResult, error)
	// ListVideos fetches statistics and contentDetails for up to 50 video IDs.
	ListVideos(ctx context.Context, videoIDs []string) ([]Video, error)
}

// New creates a new YouTube Data API client.
func New(l pkglog.Logger, cfg YouTubeConfig) (IYouTube, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &youtubeImpl{
		l:      l,
		config: cfg,
		client: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: cfg.Timeout,
			Retries: 0,
		}),
	}, nil
}
