package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	videoIDRegex  = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)
	durationRegex = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)
)

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL.
// Supports watch, short, embed and share forms. Returns false when the
// URL carries no recognizable ID.
func ExtractVideoID(rawURL string) (string, bool) {
	m := videoIDRegex.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ThumbnailURL returns the maxres thumbnail address for a video ID.
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", videoID)
}

// FormatDuration renders an ISO 8601 duration (PT1H2M3S) as H:MM:SS,
// or M:SS when under an hour.
func FormatDuration(iso string) string {
	m := durationRegex.FindStringSubmatch(iso)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		return "0:00"
	}
	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatViewCount renders a view count with Korean units (억/만/천회).
func FormatViewCount(count int64) string {
	switch {
	case count >= 100_000_000:
		return fmt.Sprintf("%.1f억회", float64(count)/100_000_000)
	case count >= 10_000:
		return fmt.Sprintf("%d만회", count/10_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1f천회", float64(count)/1_000)
	default:
		return fmt.Sprintf("%d회", count)
	}
}

// FormatViewsGrouped renders a view count with thousands separators
// and the 회 suffix, e.g. 1,234,567회.
func FormatViewsGrouped(count int64) string {
	s := strconv.FormatInt(count, 10)
	var b []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			b = append(b, ',')
		}
		b = append(b, d)
	}
	return string(b) + "회"
}

// FormatRelativeDate renders a publish time relative to now in Korean
// (오늘, N일 전, N주 전, N개월 전, N년 전).
func FormatRelativeDate(published, now time.Time) string {
	days := int(now.Sub(published).Hours() / 24)
	switch {
	case days <= 0:
		return "오늘"
	case days < 7:
		return fmt.Sprintf("%d일 전", days)
	case days < 30:
		return fmt.Sprintf("%d주 전", days/7)
	case days < 365:
		return fmt.Sprintf("%d개월 전", days/30)
	default:
		return fmt.Sprintf("%d년 전", days/365)
	}
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
