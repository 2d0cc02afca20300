package youtube

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"
)

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

// scriptedClient replays canned responses in order, repeating the last
// one when calls outrun the script.
type scriptedClient struct {
	responses []string
	statuses  []int
	urls      []string
}

func (s *scriptedClient) Get(ctx context.Context, u string, headers map[string]string) ([]byte, int, error) {
	s.urls = append(s.urls, u)
	i := len(s.urls) - 1
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	status := 200
	if i < len(s.statuses) {
		status = s.statuses[i]
	}
	return []byte(s.responses[i]), status, nil
}

func (s *scriptedClient) Post(ctx context.Context, u string, body interface{}, headers map[string]string) ([]byte, int, error) {
	return nil, 0, fmt.Errorf("unexpected POST %s", u)
}

func newTestClient(responses ...string) (*youtubeImpl, *scriptedClient) {
	c := &scriptedClient{responses: responses}
	return &youtubeImpl{
		l:      nopLogger{},
		config: YouTubeConfig{APIKey: "test-key", BaseURL: "https://api.test/v3"},
		client: c,
	}, c
}

func commentPage(token string, texts ...string) string {
	items := make([]string, 0, len(texts))
	for i, text := range texts {
		items = append(items, fmt.Sprintf(
			`{"id":"t%d","snippet":{"topLevelComment":{"id":"c%d","snippet":{"textOriginal":%q,"authorDisplayName":"author%d"}}}}`,
			i, i, text, i))
	}
	page := fmt.Sprintf(`{"items":[%s]`, strings.Join(items, ","))
	if token != "" {
		page += fmt.Sprintf(`,"nextPageToken":%q`, token)
	}
	return page + "}"
}

func TestListCommentThreads(t *testing.T) {
	ctx := context.Background()

	t.Run("empty page with token halts", func(t *testing.T) {
		yt, c := newTestClient(commentPage("always-more"))
		comments, err := yt.ListCommentThreads(ctx, "vid", 5)
		if err != nil {
			t.Fatalf("ListCommentThreads() error = %v", err)
		}
		if len(comments) != 0 {
			t.Errorf("len(comments) = %d, want 0", len(comments))
		}
		if len(c.urls) != 1 {
			t.Errorf("requests = %d, want 1 (empty page must halt pagination)", len(c.urls))
		}
	})

	t.Run("paginates until token missing", func(t *testing.T) {
		yt, c := newTestClient(
			commentPage("page2", "첫 번째 댓글", "두 번째 댓글"),
			commentPage("", "세 번째 댓글"),
		)
		comments, err := yt.ListCommentThreads(ctx, "vid", 10)
		if err != nil {
			t.Fatalf("ListCommentThreads() error = %v", err)
		}
		if len(comments) != 3 {
			t.Fatalf("len(comments) = %d, want 3", len(comments))
		}
		if comments[2].Text != "세 번째 댓글" {
			t.Errorf("comments[2].Text = %q", comments[2].Text)
		}
		if len(c.urls) != 2 {
			t.Errorf("requests = %d, want 2", len(c.urls))
		}
		if !strings.Contains(c.urls[1], "pageToken=page2") {
			t.Errorf("second request missing page token: %s", c.urls[1])
		}
	})

	t.Run("stops at limit", func(t *testing.T) {
		yt, c := newTestClient(commentPage("more", "하나", "둘"))
		comments, err := yt.ListCommentThreads(ctx, "vid", 2)
		if err != nil {
			t.Fatalf("ListCommentThreads() error = %v", err)
		}
		if len(comments) != 2 {
			t.Errorf("len(comments) = %d, want 2", len(comments))
		}
		if len(c.urls) != 1 {
			t.Errorf("requests = %d, want 1", len(c.urls))
		}
	})

	t.Run("negative limit drains all pages", func(t *testing.T) {
		yt, c := newTestClient(
			commentPage("page2", "하나"),
			commentPage("", "둘"),
		)
		comments, err := yt.ListCommentThreads(ctx, "vid", -1)
		if err != nil {
			t.Fatalf("ListCommentThreads() error = %v", err)
		}
		if len(comments) != 2 {
			t.Errorf("len(comments) = %d, want 2", len(comments))
		}
		if len(c.urls) != 2 {
			t.Errorf("requests = %d, want 2", len(c.urls))
		}
		if !strings.Contains(c.urls[0], "maxResults=100") {
			t.Errorf("unlimited fetch should use full page size: %s", c.urls[0])
		}
	})

	t.Run("page size clamped to remaining", func(t *testing.T) {
		yt, c := newTestClient(commentPage("", "하나"))
		if _, err := yt.ListCommentThreads(ctx, "vid", 7); err != nil {
			t.Fatalf("ListCommentThreads() error = %v", err)
		}
		u, err := url.Parse(c.urls[0])
		if err != nil {
			t.Fatalf("parse url: %v", err)
		}
		if got := u.Query().Get("maxResults"); got != "7" {
			t.Errorf("maxResults = %q, want 7", got)
		}
	})
}
