package youtube

import (
	"testing"
	"time"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{
			name:   "watch URL",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "short URL",
			url:    "https://youtu.be/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "embed URL",
			url:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "watch URL with extra params",
			url:    "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ&t=10s",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "not a youtube URL",
			url:    "https://example.com/watch?v=dQw4w9WgXcQx",
			wantOK: false,
		},
		{
			name:   "ID too short",
			url:    "https://youtu.be/short",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractVideoID(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ExtractVideoID(%q) ok = %v, want %v", tt.url, ok, tt.wantOK)
			}
			if ok && got != tt.wantID {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.wantID)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"PT1H2M3S", "1:02:03"},
		{"PT15M33S", "15:33"},
		{"PT45S", "0:45"},
		{"PT2H", "2:00:00"},
		{"PT3M", "3:00"},
		{"", "0:00"},
		{"garbage", "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.iso, func(t *testing.T) {
			if got := FormatDuration(tt.iso); got != tt.want {
				t.Errorf("FormatDuration(%q) = %q, want %q", tt.iso, got, tt.want)
			}
		})
	}
}

func TestFormatViewCount(t *testing.T) {
	tests := []struct {
		count int64
		want  string
	}{
		{250_000_000, "2.5억회"},
		{1_234_567, "123만회"},
		{45_000, "4만회"},
		{5_500, "5.5천회"},
		{999, "999회"},
		{0, "0회"},
	}

	for _, tt := range tests {
		if got := FormatViewCount(tt.count); got != tt.want {
			t.Errorf("FormatViewCount(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestFormatViewsGrouped(t *testing.T) {
	tests := []struct {
		count int64
		want  string
	}{
		{1_234_567, "1,234,567회"},
		{999, "999회"},
		{1_000, "1,000회"},
		{0, "0회"},
	}

	for _, tt := range tests {
		if got := FormatViewsGrouped(tt.count); got != tt.want {
			t.Errorf("FormatViewsGrouped(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestFormatRelativeDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		published time.Time
		want      string
	}{
		{"same day", now.Add(-2 * time.Hour), "오늘"},
		{"three days", now.AddDate(0, 0, -3), "3일 전"},
		{"two weeks", now.AddDate(0, 0, -14), "2주 전"},
		{"two months", now.AddDate(0, 0, -61), "2개월 전"},
		{"two years", now.AddDate(0, 0, -730), "2년 전"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRelativeDate(tt.published, now); got != tt.want {
				t.Errorf("FormatRelativeDate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestThumbnailURL(t *testing.T) {
	want := "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg"
	if got := ThumbnailURL("dQw4w9WgXcQ"); got != want {
		t.Errorf("ThumbnailURL = %q, want %q", got, want)
	}
}
