package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"insight-srv/internal/trend"
	"insight-srv/pkg/youtube"
)

// policyYouTube fails the first failCount searches, then returns results.
type policyYouTube struct {
	fakeYouTube
	failCount int
	results   []youtube.SearchResult
	calls     int
}

func (f *policyYouTube) Search(ctx context.Context, opts youtube.SearchOptions) ([]youtube.SearchResult, error) {
	f.calls++
	f.searches = append(f.searches, opts)
	if f.calls <= f.failCount {
		return nil, errors.New("search failed")
	}
	return f.results, nil
}

func TestTrendingVideos(t *testing.T) {
	ctx := context.Background()

	t.Run("empty keyword rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeYouTube{}, nil)
		if _, err := uc.TrendingVideos(ctx, trend.VideosInput{Keyword: "   "}); !errors.Is(err, trend.ErrKeywordRequired) {
			t.Errorf("error = %v, want %v", err, trend.ErrKeywordRequired)
		}
	})

	t.Run("leading hash stripped", func(t *testing.T) {
		yt := &fakeYouTube{searchResults: map[string][]youtube.SearchResult{
			"ChatGPT": {{VideoID: "v1", Title: "영상"}},
		}}
		uc := newTestUseCase(yt, nil)
		out, err := uc.TrendingVideos(ctx, trend.VideosInput{Keyword: "#ChatGPT"})
		if err != nil {
			t.Fatalf("TrendingVideos() error = %v", err)
		}
		if out.Keyword != "ChatGPT" {
			t.Errorf("Keyword = %q, want ChatGPT", out.Keyword)
		}
	})

	t.Run("results enriched with statistics", func(t *testing.T) {
		yt := &fakeYouTube{
			searchResults: map[string][]youtube.SearchResult{
				"AI": {{VideoID: "v1", Title: "검색 제목"}},
			},
			videos: []youtube.Video{{
				ID:           "v1",
				Title:        "상세 제목",
				ChannelTitle: "채널",
				ViewCount:    152000,
				PublishedAt:  time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC),
				ThumbnailURL: "https://i.ytimg.com/vi/v1/maxresdefault.jpg",
			}},
		}
		uc := newTestUseCase(yt, nil)
		out, err := uc.TrendingVideos(ctx, trend.VideosInput{Keyword: "AI"})
		if err != nil {
			t.Fatalf("TrendingVideos() error = %v", err)
		}
		if out.Source != trend.SourceAPI {
			t.Errorf("Source = %q, want %q", out.Source, trend.SourceAPI)
		}
		if len(out.Videos) != 1 {
			t.Fatalf("len(Videos) = %d, want 1", len(out.Videos))
		}
		v := out.Videos[0]
		if v.Title != "상세 제목" {
			t.Errorf("Title = %q, want detail title", v.Title)
		}
		if v.ViewCount != "15만회" {
			t.Errorf("ViewCount = %q, want 15만회", v.ViewCount)
		}
		if v.PublishedAt != "1일 전" {
			t.Errorf("PublishedAt = %q, want 1일 전", v.PublishedAt)
		}
		if v.URL != "https://www.youtube.com/watch?v=v1" {
			t.Errorf("URL = %q", v.URL)
		}
		if v.Keyword != "AI" {
			t.Errorf("Keyword = %q, want AI", v.Keyword)
		}
	})

	t.Run("detail failure keeps snippet board", func(t *testing.T) {
		yt := &fakeYouTube{
			searchResults: map[string][]youtube.SearchResult{
				"AI": {{VideoID: "v1", Title: "검색 제목", ChannelTitle: "채널", PublishedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}},
			},
			videosErr: errors.New("detail failed"),
		}
		uc := newTestUseCase(yt, nil)
		out, err := uc.TrendingVideos(ctx, trend.VideosInput{Keyword: "AI"})
		if err != nil {
			t.Fatalf("TrendingVideos() error = %v", err)
		}
		if out.Source != trend.SourceAPI {
			t.Errorf("Source = %q, want %q", out.Source, trend.SourceAPI)
		}
		if len(out.Videos) != 1 {
			t.Fatalf("len(Videos) = %d, want 1", len(out.Videos))
		}
		if out.Videos[0].Title != "검색 제목" {
			t.Errorf("Title = %q, want snippet title", out.Videos[0].Title)
		}
	})

	t.Run("later policy succeeds after failures", func(t *testing.T) {
		yt := &policyYouTube{
			failCount: 2,
			results:   []youtube.SearchResult{{VideoID: "v1", Title: "영상"}},
		}
		uc := newTestUseCase(&fakeYouTube{}, nil)
		uc.youtube = yt
		out, err := uc.TrendingVideos(ctx, trend.VideosInput{Keyword: "AI"})
		if err != nil {
			t.Fatalf("TrendingVideos() error = %v", err)
		}
		if out.Source != trend.SourceAPI {
			t.Errorf("Source = %q, want %q", out.Source, trend.SourceAPI)
		}
		if yt.calls != 3 {
			t.Errorf("search calls = %d, want 3", yt.calls)
		}
	})

	t.Run("quota error short-circuits to mock board", func(t *testing.T) {
		yt := &fakeYouTube{searchErr: youtube.ErrQuotaExceeded}
		uc := newTestUseCase(yt, nil)
		out, err := uc.TrendingVideos(ctx, trend.VideosInput{Keyword: "AI"})
		if err != nil {
			t.Fatalf("TrendingVideos() error = %v", err)
		}
		if out.Source != trend.SourceMock {
			t.Errorf("Source = %q, want %q", out.Source, trend.SourceMock)
		}
		if len(yt.searches) != 1 {
			t.Errorf("search calls = %d, want 1 (chain abandoned)", len(yt.searches))
		}
		if len(out.Videos) != len(mockVideoTemplates) {
			t.Errorf("len(Videos) = %d, want %d", len(out.Videos), len(mockVideoTemplates))
		}
		for _, v := range out.Videos {
			if !strings.Contains(v.Title, "AI") {
				t.Errorf("mock title %q missing keyword", v.Title)
			}
			if v.Keyword != "AI" {
				t.Errorf("Keyword = %q, want AI", v.Keyword)
			}
		}
	})

	t.Run("exhausted chain falls back to mock board", func(t *testing.T) {
		yt := &fakeYouTube{} // every search returns nothing
		uc := newTestUseCase(yt, nil)
		out, err := uc.TrendingVideos(ctx, trend.VideosInput{Keyword: "AI"})
		if err != nil {
			t.Fatalf("TrendingVideos() error = %v", err)
		}
		if out.Source != trend.SourceMock {
			t.Errorf("Source = %q, want %q", out.Source, trend.SourceMock)
		}
		if want := len(trend.DefaultPolicyChain()); len(yt.searches) != want {
			t.Errorf("search calls = %d, want %d", len(yt.searches), want)
		}
	})
}

func TestDefaultPolicyChain(t *testing.T) {
	chain := trend.DefaultPolicyChain()
	if len(chain) != 4 {
		t.Fatalf("len(chain) = %d, want 4", len(chain))
	}
	if chain[0].Order != youtube.OrderRelevance {
		t.Errorf("chain[0].Order = %q, want relevance", chain[0].Order)
	}
	if chain[1].Order != youtube.OrderViewCount {
		t.Errorf("chain[1].Order = %q, want viewCount", chain[1].Order)
	}
	if chain[2].Order != youtube.OrderDate {
		t.Errorf("chain[2].Order = %q, want date", chain[2].Order)
	}
	if chain[3].RegionCode != "KR" {
		t.Errorf("chain[3].RegionCode = %q, want KR", chain[3].RegionCode)
	}
}
