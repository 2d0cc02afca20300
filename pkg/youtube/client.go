package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

func (y *youtubeImpl) get(ctx context.Context, resource string, params url.Values, out interface{}) error {
	params.Set("key", y.config.APIKey)
	endpoint := fmt.Sprintf("%s/%s?%s", y.config.BaseURL, resource, params.Encode())

	body, status, err := y.client.Get(ctx, endpoint, nil)
	if err != nil {
		return fmt.Errorf("youtube: call %s: %w", resource, err)
	}
	if status != http.StatusOK {
		return y.apiError(ctx, resource, status, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("youtube: decode %s response: %w", resource, err)
	}
	return nil
}

func (y *youtubeImpl) apiError(ctx context.Context, resource string, status int, body []byte) error {
	var apiErr apiErrorResponse
	_ = json.Unmarshal(body, &apiErr)

	y.l.Warnf(ctx, "youtube.apiError: resource=%s status=%d message=%s", resource, status, apiErr.Error.Message)

	if status == http.StatusForbidden {
		return ErrQuotaExceeded
	}
	if apiErr.Error.Message != "" {
		return fmt.Errorf("%w: %s (status %d)", ErrAPIError, apiErr.Error.Message, status)
	}
	return fmt.Errorf("%w: status %d", ErrAPIError, status)
}

// GetVideo implements IYouTube.
func (y *youtubeImpl) GetVideo(ctx context.Context, videoID string) (Video, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", videoID)

	var resp videoListResponse
	if err := y.get(ctx, "videos", params, &resp); err != nil {
		return Video{}, err
	}
	if len(resp.Items) == 0 {
		return Video{}, ErrVideoNotFound
	}
	return toVideo(resp.Items[0]), nil
}

// ListVideos implements IYouTube.
func (y *youtubeImpl) ListVideos(ctx context.Context, videoIDs []string) ([]Video, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}
	if len(videoIDs) > MaxVideosPerList {
		videoIDs = videoIDs[:MaxVideosPerList]
	}

	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", strings.Join(videoIDs, ","))

	var resp videoListResponse
	if err := y.get(ctx, "videos", params, &resp); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		videos = append(videos, toVideo(item))
	}
	return videos, nil
}

// ListCommentThreads implements IYouTube.
func (y *youtubeImpl) ListCommentThreads(ctx context.Context, videoID string, limit int) ([]Comment, error) {
	var comments []Comment
	pageToken := ""

	for {
		pageSize := MaxCommentsPerPage
		if limit >= 0 {
			remaining := limit - len(comments)
			if remaining <= 0 {
				break
			}
			if remaining < pageSize {
				pageSize = remaining
			}
		}

		params := url.Values{}
		params.Set("part", "snippet")
		params.Set("videoId", videoID)
		params.Set("order", OrderRelevance)
		params.Set("maxResults", strconv.Itoa(pageSize))
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var resp commentThreadListResponse
		if err := y.get(ctx, "commentThreads", params, &resp); err != nil {
			return nil, err
		}
		// An empty page means the thread list is exhausted even when the
		// API still hands out a continuation token.
		if len(resp.Items) == 0 {
			break
		}

		for _, item := range resp.Items {
			s := item.Snippet.TopLevelComment.Snippet
			text := s.TextOriginal
			if text == "" {
				text = s.TextDisplay
			}
			comments = append(comments, Comment{
				ID:          item.Snippet.TopLevelComment.ID,
				Author:      s.AuthorDisplayName,
				Text:        text,
				LikeCount:   s.LikeCount,
				PublishedAt: s.PublishedAt,
			})
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	if limit >= 0 && len(comments) > limit {
		comments = comments[:limit]
	}
	return comments, nil
}

// Search implements IYouTube.
func (y *youtubeImpl) Search(ctx context.Context, opts SearchOptions) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("q", opts.Query)
	if opts.Order != "" {
		params.Set("order", opts.Order)
	}
	if opts.RegionCode != "" {
		params.Set("regionCode", opts.RegionCode)
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 25
	}
	params.Set("maxResults", strconv.Itoa(maxResults))
	if !opts.PublishedAfter.IsZero() {
		params.Set("publishedAfter", opts.PublishedAfter.UTC().Format(time.RFC3339))
	}

	var resp searchListResponse
	if err := y.get(ctx, "search", params, &resp); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ID.VideoID == "" {
			continue
		}
		results = append(results, SearchResult{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
			ThumbnailURL: pickThumbnail(item.Snippet.Thumbnails),
		})
	}
	return results, nil
}

func toVideo(item videoItem) Video {
	return Video{
		ID:           item.ID,
		Title:        item.Snippet.Title,
		ChannelTitle: item.Snippet.ChannelTitle,
		Description:  item.Snippet.Description,
		PublishedAt:  item.Snippet.PublishedAt,
		Duration:     item.ContentDetails.Duration,
		ViewCount:    parseCount(item.Statistics.ViewCount),
		LikeCount:    parseCount(item.Statistics.LikeCount),
		CommentCount: parseCount(item.Statistics.CommentCount),
		ThumbnailURL: pickThumbnail(item.Snippet.Thumbnails),
	}
}

func pickThumbnail(t thumbnails) string {
	switch {
	case t.Maxres.URL != "":
		return t.Maxres.URL
	case t.High.URL != "":
		return t.High.URL
	case t.Medium.URL != "":
		return t.Medium.URL
	default:
		return t.Default.URL
	}
}

func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
