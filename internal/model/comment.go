package model

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Topic categories.
const (
	TopicContent       = "content"
	TopicTechnical     = "technical"
	TopicEducational   = "educational"
	TopicEntertainment = "entertainment"
	TopicPersonal      = "personal"
)

// Length buckets, by rune count.
const (
	LengthShort  = "short"  // < 20
	LengthMedium = "medium" // < 100
	LengthLong   = "long"
)

// Engagement levels.
const (
	EngagementHigh = "high"
	EngagementLow  = "low"
)

// Comment is one top-level comment flowing through the analysis
// pipeline. Text holds the translated form; OriginalText is set only
// when translation changed the text.
type Comment struct {
	Author       string
	Text         string
	OriginalText string

	Sentiment string
	Keywords  []string

	Analysis CommentAnalysis
}

// CommentAnalysis is the per-comment feature breakdown.
type CommentAnalysis struct {
	IntensityScore int
	Topics         []string
	IsQuestion     bool
	LengthCategory string
	Engagement     string
}
