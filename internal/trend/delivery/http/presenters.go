package http

import (
	"time"

	"insight-srv/internal/model"
	"insight-srv/internal/trend"
)

// =====================================================
// Request DTOs
// =====================================================

type videosReq struct {
	Keyword string `json:"keyword"`
}

func (r videosReq) toInput() trend.VideosInput {
	return trend.VideosInput{Keyword: r.Keyword}
}

// =====================================================
// Response DTOs
// =====================================================

type keywordsResp struct {
	Keywords  []trendKeywordResp `json:"keywords"`
	Timestamp time.Time          `json:"timestamp"`
	Source    string             `json:"source"`
	CacheHit  bool               `json:"cacheHit"`
}

type trendKeywordResp struct {
	Keyword      string `json:"keyword"`
	Rank         int    `json:"rank"`
	Change       string `json:"change"`
	SearchVolume string `json:"searchVolume"`
	Category     string `json:"category"`
}

type videosResp struct {
	Videos    []trendVideoResp `json:"videos"`
	Keyword   string           `json:"keyword"`
	Timestamp time.Time        `json:"timestamp"`
	Count     int              `json:"count"`
	Source    string           `json:"source"`
}

type trendVideoResp struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
	ViewCount    string `json:"viewCount"`
	PublishedAt  string `json:"publishedAt"`
	URL          string `json:"url"`
}

func (h *handler) newKeywordsResp(output trend.KeywordsOutput) keywordsResp {
	keywords := make([]trendKeywordResp, 0, len(output.Keywords))
	for _, k := range output.Keywords {
		keywords = append(keywords, trendKeywordResp{
			Keyword:      k.Keyword,
			Rank:         k.Rank,
			Change:       k.Change,
			SearchVolume: k.SearchVolume,
			Category:     k.Category,
		})
	}
	return keywordsResp{
		Keywords:  keywords,
		Timestamp: time.Now(),
		Source:    output.Source,
		CacheHit:  output.CacheHit,
	}
}

func (h *handler) newVideosResp(output trend.VideosOutput) videosResp {
	videos := make([]trendVideoResp, 0, len(output.Videos))
	for _, v := range output.Videos {
		videos = append(videos, newTrendVideoResp(v))
	}
	return videosResp{
		Videos:    videos,
		Keyword:   output.Keyword,
		Timestamp: time.Now(),
		Count:     len(videos),
		Source:    output.Source,
	}
}

func newTrendVideoResp(v model.TrendVideo) trendVideoResp {
	return trendVideoResp{
		ID:           v.VideoID,
		Title:        v.Title,
		Thumbnail:    v.Thumbnail,
		ChannelTitle: v.ChannelName,
		ViewCount:    v.ViewCount,
		PublishedAt:  v.PublishedAt,
		URL:          v.URL,
	}
}
