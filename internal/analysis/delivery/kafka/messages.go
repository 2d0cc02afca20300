package kafka

import "time"

// AnalysisCompletedMessage - Kafka message for insight.analysis.completed
type AnalysisCompletedMessage struct {
	AnalysisID    string    `json:"analysis_id"`
	VideoID       string    `json:"video_id"`
	VideoTitle    string    `json:"video_title"`
	CommentCount  int       `json:"comment_count"`
	PositiveCount int       `json:"positive_count"`
	NegativeCount int       `json:"negative_count"`
	NeutralCount  int       `json:"neutral_count"`
	DataSource    string    `json:"data_source"`
	LLMUsed       bool      `json:"llm_used"`
	CompletedAt   time.Time `json:"completed_at"`
}
