package model

import "time"

// Data source tiers for an analysis run.
const (
	DataSourceAPI      = "youtube_api"
	DataSourceFallback = "fallback"
)

// AnalysisRecord is one persisted analysis run.
type AnalysisRecord struct {
	ID            string
	VideoID       string
	VideoTitle    string
	CommentCount  int
	PositiveCount int
	NegativeCount int
	NeutralCount  int
	TopKeywords   []string
	Summary       string
	DataSource    string
	LLMUsed       bool
	CreatedAt     time.Time
}
