package youtube

import (
	"time"

	pkghttp "insight-srv/pkg/http"
	pkglog "insight-srv/pkg/log"
)

// YouTubeConfig is the configuration for the YouTube Data API client.
type YouTubeConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Video is one video with snippet, duration and statistics merged.
type Video struct {
	ID           string
	Title        string
	ChannelTitle string
	Description  string
	PublishedAt  time.Time
	Duration     string // ISO 8601, e.g. PT1H2M3S
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
	ThumbnailURL string
}

// Comment is one top-level comment of a thread.
type Comment struct {
	ID          string
	Author      string
	Text        string
	LikeCount   int64
	PublishedAt time.Time
}

// SearchOptions controls one search.list call.
type SearchOptions struct {
	Query      string
	Order      string // relevance, viewCount, date
	RegionCode string // e.g. KR; empty omits the parameter
	MaxResults int
	// PublishedAfter limits results to videos published after this time.
	PublishedAfter time.Time
}

// SearchResult is one video hit from search.list.
type SearchResult struct {
	VideoID      string
	Title        string
	ChannelTitle string
	PublishedAt  time.Time
	ThumbnailURL string
}

type youtubeImpl struct {
	l      pkglog.Logger
	config YouTubeConfig
	client pkghttp.IClient
}

// Wire types for the Data API v3 JSON responses.

type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID             string         `json:"id"`
	Snippet        snippet        `json:"snippet"`
	ContentDetails contentDetails `json:"contentDetails"`
	Statistics     statistics     `json:"statistics"`
}

type snippet struct {
	Title        string     `json:"title"`
	ChannelTitle string     `json:"channelTitle"`
	Description  string     `json:"description"`
	PublishedAt  time.Time  `json:"publishedAt"`
	Thumbnails   thumbnails `json:"thumbnails"`
}

type contentDetails struct {
	Duration string `json:"duration"`
}

type statistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

type thumbnails struct {
	Maxres  thumbnail `json:"maxres"`
	High    thumbnail `json:"high"`
	Medium  thumbnail `json:"medium"`
	Default thumbnail `json:"default"`
}

type thumbnail struct {
	URL string `json:"url"`
}

type commentThreadListResponse struct {
	Items         []commentThreadItem `json:"items"`
	NextPageToken string              `json:"nextPageToken"`
}

type commentThreadItem struct {
	ID      string `json:"id"`
	Snippet struct {
		TopLevelComment struct {
			ID      string `json:"id"`
			Snippet struct {
				TextDisplay       string    `json:"textDisplay"`
				TextOriginal      string    `json:"textOriginal"`
				AuthorDisplayName string    `json:"authorDisplayName"`
				LikeCount         int64     `json:"likeCount"`
				PublishedAt       time.Time `json:"publishedAt"`
			} `json:"snippet"`
		} `json:"topLevelComment"`
	} `json:"snippet"`
}

type searchListResponse struct {
	Items         []searchItem `json:"items"`
	NextPageToken string       `json:"nextPageToken"`
}

type searchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet snippet `json:"snippet"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}
