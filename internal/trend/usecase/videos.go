package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"insight-srv/internal/model"
	"insight-srv/internal/trend"
	"insight-srv/pkg/youtube"
)

// TrendingVideos runs the policy chain for one keyword and returns the
// first non-empty result set, enriched with statistics. A quota error
// short-circuits to the mock board since every later policy would hit
// the same wall.
func (uc *implUseCase) TrendingVideos(ctx context.Context, input trend.VideosInput) (trend.VideosOutput, error) {
	if strings.TrimSpace(input.Keyword) == "" {
		return trend.VideosOutput{}, trend.ErrKeywordRequired
	}
	keyword := strings.TrimSpace(strings.TrimPrefix(input.Keyword, "#"))
	if keyword == "" {
		keyword = input.Keyword
	}

	for _, policy := range uc.cfg.PolicyChain {
		results, err := uc.youtube.Search(ctx, youtube.SearchOptions{
			Query:      keyword,
			Order:      policy.Order,
			RegionCode: policy.RegionCode,
			MaxResults: uc.cfg.VideosPerSearch,
		})
		if err != nil {
			if errors.Is(err, youtube.ErrQuotaExceeded) {
				uc.l.Warnf(ctx, "trend.usecase.TrendingVideos: quota exceeded on policy %s, using mock board", policy.Name)
				break
			}
			uc.l.Warnf(ctx, "trend.usecase.TrendingVideos: policy %s failed: %v", policy.Name, err)
			continue
		}
		if len(results) == 0 {
			continue
		}

		videos := uc.enrichVideos(ctx, keyword, results)
		uc.l.Infof(ctx, "trend.usecase.TrendingVideos: keyword=%q policy=%s videos=%d", keyword, policy.Name, len(videos))
		return trend.VideosOutput{
			Videos:  videos,
			Keyword: keyword,
			Source:  trend.SourceAPI,
		}, nil
	}

	return trend.VideosOutput{
		Videos:  mockVideoBoard(keyword),
		Keyword: keyword,
		Source:  trend.SourceMock,
	}, nil
}

// enrichVideos pulls statistics for the search hits. When the detail
// call fails the search snippets alone still make a usable board.
func (uc *implUseCase) enrichVideos(ctx context.Context, keyword string, results []youtube.SearchResult) []model.TrendVideo {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.VideoID)
	}

	details, err := uc.youtube.ListVideos(ctx, ids)
	if err != nil {
		uc.l.Warnf(ctx, "trend.usecase.enrichVideos: detail fetch failed, using snippets: %v", err)
		videos := make([]model.TrendVideo, 0, len(results))
		for _, r := range results {
			videos = append(videos, model.TrendVideo{
				VideoID:     r.VideoID,
				Title:       r.Title,
				ChannelName: r.ChannelTitle,
				Thumbnail:   r.ThumbnailURL,
				ViewCount:   youtube.FormatViewCount(0),
				PublishedAt: youtube.FormatRelativeDate(r.PublishedAt, uc.now()),
				URL:         watchURL(r.VideoID),
				Keyword:     keyword,
			})
		}
		return videos
	}

	videos := make([]model.TrendVideo, 0, len(details))
	for _, v := range details {
		videos = append(videos, model.TrendVideo{
			VideoID:     v.ID,
			Title:       v.Title,
			ChannelName: v.ChannelTitle,
			Thumbnail:   v.ThumbnailURL,
			ViewCount:   youtube.FormatViewCount(v.ViewCount),
			PublishedAt: youtube.FormatRelativeDate(v.PublishedAt, uc.now()),
			URL:         watchURL(v.ID),
			Keyword:     keyword,
		})
	}
	return videos
}

func watchURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
}
