package trend

import "insight-srv/internal/model"

const (
	// KeywordBoardSize is how many keywords the board carries.
	KeywordBoardSize = 12

	// VideosPerSearch is how many videos one search returns.
	VideosPerSearch = 12

	// SeedSearchLimit bounds how many seed terms hit the API per
	// keyword refresh.
	SeedSearchLimit = 3

	// RecencyWindowDays is the publish window for keyword harvesting.
	RecencyWindowDays = 7
)

// Change markers for keyword board entries.
var ChangeValues = []string{"up", "down", "new", "same"}

// SearchPolicy is one configured video search strategy. Policies are
// tried in order until one yields results.
type SearchPolicy struct {
	Name       string
	Order      string
	RegionCode string
}

// DefaultPolicyChain mirrors the order the trend board prefers:
// relevance first, then popularity, recency, and a region-pinned
// retry.
func DefaultPolicyChain() []SearchPolicy {
	return []SearchPolicy{
		{Name: "relevance", Order: "relevance"},
		{Name: "popular", Order: "viewCount"},
		{Name: "recent", Order: "date"},
		{Name: "korea", Order: "relevance", RegionCode: "KR"},
	}
}

// KeywordsOutput is the trending keyword board.
type KeywordsOutput struct {
	Keywords []model.TrendKeyword
	Source   string
	CacheHit bool
}

// VideosInput selects videos for one keyword.
type VideosInput struct {
	Keyword string
}

// VideosOutput is the video board for one keyword.
type VideosOutput struct {
	Videos  []model.TrendVideo
	Keyword string
	Source  string
}

// Sources for trend data.
const (
	SourceAPI  = "youtube_ai_trending"
	SourceMock = "mock"
)
