package usecase

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"insight-srv/internal/trend"
	"insight-srv/internal/trend/repository"
	"insight-srv/pkg/log"
	"insight-srv/pkg/youtube"
)

// nopLogger discards all log output in tests.
type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

var _ log.Logger = nopLogger{}

type fakeYouTube struct {
	searchResults map[string][]youtube.SearchResult
	searchErr     error
	videos        []youtube.Video
	videosErr     error

	searches []youtube.SearchOptions
}

func (f *fakeYouTube) GetVideo(ctx context.Context, videoID string) (youtube.Video, error) {
	return youtube.Video{}, nil
}

func (f *fakeYouTube) ListCommentThreads(ctx context.Context, videoID string, limit int) ([]youtube.Comment, error) {
	return nil, nil
}

func (f *fakeYouTube) Search(ctx context.Context, opts youtube.SearchOptions) ([]youtube.SearchResult, error) {
	f.searches = append(f.searches, opts)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults[opts.Query], nil
}

func (f *fakeYouTube) ListVideos(ctx context.Context, videoIDs []string) ([]youtube.Video, error) {
	return f.videos, f.videosErr
}

type fakeCache struct {
	store map[string][]byte
}

func (f *fakeCache) GetTrends(ctx context.Context, key string) ([]byte, error) {
	if data, ok := f.store[key]; ok {
		return data, nil
	}
	return nil, repository.ErrCacheMiss
}

func (f *fakeCache) SaveTrends(ctx context.Context, key string, data []byte) error {
	if f.store == nil {
		f.store = map[string][]byte{}
	}
	f.store[key] = data
	return nil
}

func newTestUseCase(yt *fakeYouTube, cache repository.CacheRepository) *implUseCase {
	return &implUseCase{
		youtube:   yt,
		cacheRepo: cache,
		l:         nopLogger{},
		cfg:       DefaultConfig(),
		rng:       rand.New(rand.NewSource(1)),
		now:       func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) },
	}
}

func TestTrendingKeywords(t *testing.T) {
	ctx := context.Background()

	t.Run("harvests ai words from titles", func(t *testing.T) {
		yt := &fakeYouTube{searchResults: map[string][]youtube.SearchResult{
			"AI": {
				{VideoID: "v1", Title: "ChatGPT 활용법 총정리 (2024)"},
				{VideoID: "v2", Title: "일상 브이로그"},
			},
		}}
		uc := newTestUseCase(yt, nil)
		out, err := uc.TrendingKeywords(ctx)
		if err != nil {
			t.Fatalf("TrendingKeywords() error = %v", err)
		}
		if out.Source != trend.SourceAPI {
			t.Errorf("Source = %q, want %q", out.Source, trend.SourceAPI)
		}
		if len(out.Keywords) == 0 {
			t.Fatal("no keywords harvested")
		}
		if out.Keywords[0].Keyword != "ChatGPT" {
			t.Errorf("Keywords[0] = %q, want ChatGPT", out.Keywords[0].Keyword)
		}
		if out.Keywords[0].Rank != 1 {
			t.Errorf("Rank = %d, want 1", out.Keywords[0].Rank)
		}
		if out.Keywords[0].Category != "기술" {
			t.Errorf("Category = %q, want 기술", out.Keywords[0].Category)
		}
	})

	t.Run("searches only the first three seeds", func(t *testing.T) {
		yt := &fakeYouTube{}
		uc := newTestUseCase(yt, nil)
		if _, err := uc.TrendingKeywords(ctx); err != nil {
			t.Fatalf("TrendingKeywords() error = %v", err)
		}
		if len(yt.searches) != trend.SeedSearchLimit {
			t.Fatalf("searches = %d, want %d", len(yt.searches), trend.SeedSearchLimit)
		}
		for _, opts := range yt.searches {
			if opts.Order != youtube.OrderViewCount {
				t.Errorf("Order = %q, want %q", opts.Order, youtube.OrderViewCount)
			}
			if opts.MaxResults != 10 {
				t.Errorf("MaxResults = %d, want 10", opts.MaxResults)
			}
			wantAfter := uc.now().AddDate(0, 0, -trend.RecencyWindowDays)
			if !opts.PublishedAfter.Equal(wantAfter) {
				t.Errorf("PublishedAfter = %v, want %v", opts.PublishedAfter, wantAfter)
			}
		}
	})

	t.Run("empty harvest falls back to mock board", func(t *testing.T) {
		yt := &fakeYouTube{searchErr: errors.New("quota")}
		uc := newTestUseCase(yt, nil)
		out, err := uc.TrendingKeywords(ctx)
		if err != nil {
			t.Fatalf("TrendingKeywords() error = %v", err)
		}
		if out.Source != trend.SourceMock {
			t.Errorf("Source = %q, want %q", out.Source, trend.SourceMock)
		}
		if len(out.Keywords) != trend.KeywordBoardSize {
			t.Errorf("len(Keywords) = %d, want %d", len(out.Keywords), trend.KeywordBoardSize)
		}
		for i, kw := range out.Keywords {
			if kw.Rank != i+1 {
				t.Errorf("Keywords[%d].Rank = %d, want %d", i, kw.Rank, i+1)
			}
			if kw.Change == "" || kw.SearchVolume == "" {
				t.Errorf("Keywords[%d] missing change or volume: %+v", i, kw)
			}
		}
	})

	t.Run("second call hits cache", func(t *testing.T) {
		yt := &fakeYouTube{}
		cache := &fakeCache{}
		uc := newTestUseCase(yt, cache)
		if _, err := uc.TrendingKeywords(ctx); err != nil {
			t.Fatalf("first call error = %v", err)
		}
		out, err := uc.TrendingKeywords(ctx)
		if err != nil {
			t.Fatalf("second call error = %v", err)
		}
		if !out.CacheHit {
			t.Error("CacheHit = false on second call")
		}
		if len(yt.searches) != trend.SeedSearchLimit {
			t.Errorf("searches = %d, want %d (no extra searches after cache)", len(yt.searches), trend.SeedSearchLimit)
		}
	})
}

func TestHarvestWordsFromTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{
			name:  "keeps ai related words",
			title: "ChatGPT 활용법과 인공지능 전망",
			want:  []string{"ChatGPT", "인공지능"},
		},
		{
			name:  "caps at two words",
			title: "AI로 머신러닝과 딥러닝 배우기",
			want:  []string{"AI로", "머신러닝과"},
		},
		{
			name:  "drops one-rune and numeric tokens",
			title: "2024 AI",
			want:  []string{"AI"},
		},
		{
			name:  "brackets split tokens",
			title: "[속보] ChatGPT-신기능",
			want:  []string{"ChatGPT"},
		},
		{
			name:  "unrelated title yields nothing",
			title: "오늘의 요리 레시피",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := harvestWordsFromTitle(tt.title); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("harvestWordsFromTitle(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestIsAIRelated(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"ChatGPT", true},
		{"chatgpt", true},
		{"인공지능", true},
		{"AI로", true},  // word contains the keyword
		{"테크", true},
		{"요리", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := isAIRelated(tt.word); got != tt.want {
				t.Errorf("isAIRelated(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestMockKeywordBoard(t *testing.T) {
	uc := newTestUseCase(&fakeYouTube{}, nil)
	board := uc.mockKeywordBoard()
	if len(board) != trend.KeywordBoardSize {
		t.Fatalf("len(board) = %d, want %d", len(board), trend.KeywordBoardSize)
	}
	seen := map[string]struct{}{}
	for i, kw := range board {
		if kw.Rank != i+1 {
			t.Errorf("board[%d].Rank = %d, want %d", i, kw.Rank, i+1)
		}
		if _, dup := seen[kw.Keyword]; dup {
			t.Errorf("duplicate keyword %q", kw.Keyword)
		}
		seen[kw.Keyword] = struct{}{}

		validChange := false
		for _, c := range trend.ChangeValues {
			if kw.Change == c {
				validChange = true
			}
		}
		if !validChange {
			t.Errorf("board[%d].Change = %q not in %v", i, kw.Change, trend.ChangeValues)
		}
	}
}
