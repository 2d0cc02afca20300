package analysis

import "insight-srv/internal/model"

const (
	// DefaultCommentLimit applies when the request omits comment_limit.
	DefaultCommentLimit = 100

	// AllComments requests every available comment.
	AllComments = -1

	// AllCommentsCeiling caps an unbounded fetch.
	AllCommentsCeiling = 10000

	// MaxReturnedComments caps the comments echoed in the response.
	MaxReturnedComments = 50

	// MinCommentLength drops comments at or under this rune count
	// after cleaning.
	MinCommentLength = 5

	// RepresentativePerSentiment is how many comments illustrate each
	// sentiment class.
	RepresentativePerSentiment = 3
)

// AnalyzeInput carries one analysis request.
type AnalyzeInput struct {
	URL          string
	CommentLimit int
}

// AnalyzeOutput is the full analysis result.
type AnalyzeOutput struct {
	Summary                string
	VideoInfo              model.VideoInfo
	Comments               []model.Comment
	RepresentativeComments map[string][]model.Comment
	Trends                 CommentTrends
	Visual                 Visual
	Metadata               Metadata
	CacheHit               bool
}

// CommentTrends aggregates per-comment features across the whole set.
type CommentTrends struct {
	MostEngaged        int
	QuestionRatio      float64
	TopicDistribution  map[string]int
	SentimentIntensity SentimentIntensity
	LengthDistribution LengthDistribution
}

// SentimentIntensity counts comments by intensity sign.
type SentimentIntensity struct {
	VeryPositive int
	VeryNegative int
	Neutral      int
}

// LengthDistribution counts comments by length bucket.
type LengthDistribution struct {
	Short  int
	Medium int
	Long   int
}

// Visual holds the chart-ready aggregates.
type Visual struct {
	SentimentDistribution SentimentDistribution
	TopKeywords           []string
}

// SentimentDistribution holds rounded percentages summing near 100.
type SentimentDistribution struct {
	Positive int
	Neutral  int
	Negative int
}

// Metadata describes how the analysis was produced.
type Metadata struct {
	TotalComments      int
	HasTranscript      bool
	DataSource         string
	CommentLimit       int // AllComments means every comment
	TranslationApplied bool
	LLMUsed            bool
}
