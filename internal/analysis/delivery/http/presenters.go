package http

import (
	"time"

	"insight-srv/internal/analysis"
	"insight-srv/internal/model"
)

// =====================================================
// Request DTOs
// =====================================================

type analyzeReq struct {
	URL          string `json:"url"`
	CommentLimit *int   `json:"commentLimit,omitempty"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	limit := analysis.DefaultCommentLimit
	if r.CommentLimit != nil {
		limit = *r.CommentLimit
	}
	return analysis.AnalyzeInput{
		URL:          r.URL,
		CommentLimit: limit,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type analyzeResp struct {
	Summary                string                   `json:"summary"`
	VideoInfo              videoInfoResp            `json:"videoInfo"`
	Comments               []commentResp            `json:"comments"`
	RepresentativeComments map[string][]commentResp `json:"representativeComments"`
	Trends                 trendsResp               `json:"trends"`
	Visual                 visualResp               `json:"visual"`
	Metadata               metadataResp             `json:"metadata"`
}

type videoInfoResp struct {
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	Duration     string `json:"duration"`
	Views        string `json:"views"`
	Description  string `json:"description"`
	PublishedAt  string `json:"publishedAt,omitempty"`
	ChannelTitle string `json:"channelTitle"`
}

type commentResp struct {
	Text         string           `json:"text"`
	OriginalText string           `json:"originalText,omitempty"`
	Sentiment    string           `json:"sentiment"`
	Keywords     []string         `json:"keywords"`
	Author       string           `json:"author"`
	Analysis     commentBreakdown `json:"analysis"`
}

type commentBreakdown struct {
	IntensityScore int      `json:"intensityScore"`
	Topics         []string `json:"topics"`
	IsQuestion     bool     `json:"isQuestion"`
	LengthCategory string   `json:"lengthCategory"`
	Engagement     string   `json:"engagement"`
}

type trendsResp struct {
	MostEngaged        int                    `json:"mostEngaged"`
	QuestionRatio      float64                `json:"questionRatio"`
	TopicDistribution  map[string]int         `json:"topicDistribution"`
	SentimentIntensity sentimentIntensityResp `json:"sentimentIntensity"`
	LengthDistribution lengthDistributionResp `json:"lengthDistribution"`
}

type sentimentIntensityResp struct {
	VeryPositive int `json:"veryPositive"`
	VeryNegative int `json:"veryNegative"`
	Neutral      int `json:"neutral"`
}

type lengthDistributionResp struct {
	Short  int `json:"short"`
	Medium int `json:"medium"`
	Long   int `json:"long"`
}

type visualResp struct {
	SentimentDistribution sentimentDistributionResp `json:"sentimentDistribution"`
	TopKeywords           []string                  `json:"topKeywords"`
}

type sentimentDistributionResp struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

type metadataResp struct {
	TotalComments      int         `json:"totalComments"`
	HasTranscript      bool        `json:"hasTranscript"`
	DataSource         string      `json:"dataSource"`
	CommentLimit       interface{} `json:"commentLimit"`
	TranslationApplied bool        `json:"translationApplied"`
	LLMUsed            bool        `json:"llmUsed"`
	CacheHit           bool        `json:"cacheHit"`
}

type analysisRecordResp struct {
	ID            string    `json:"id"`
	VideoID       string    `json:"videoId"`
	VideoTitle    string    `json:"videoTitle"`
	CommentCount  int       `json:"commentCount"`
	PositiveCount int       `json:"positiveCount"`
	NegativeCount int       `json:"negativeCount"`
	NeutralCount  int       `json:"neutralCount"`
	TopKeywords   []string  `json:"topKeywords"`
	Summary       string    `json:"summary"`
	DataSource    string    `json:"dataSource"`
	LLMUsed       bool      `json:"llmUsed"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (h *handler) newAnalyzeResp(output analysis.AnalyzeOutput) analyzeResp {
	comments := make([]commentResp, 0, len(output.Comments))
	for _, c := range output.Comments {
		comments = append(comments, newCommentResp(c))
	}

	representative := make(map[string][]commentResp, len(output.RepresentativeComments))
	for sentiment, group := range output.RepresentativeComments {
		list := make([]commentResp, 0, len(group))
		for _, c := range group {
			list = append(list, newCommentResp(c))
		}
		representative[sentiment] = list
	}

	var commentLimit interface{} = output.Metadata.CommentLimit
	if output.Metadata.CommentLimit == analysis.AllComments {
		commentLimit = "all"
	}

	return analyzeResp{
		Summary: output.Summary,
		VideoInfo: videoInfoResp{
			Title:        output.VideoInfo.Title,
			Thumbnail:    output.VideoInfo.Thumbnail,
			Duration:     output.VideoInfo.Duration,
			Views:        output.VideoInfo.Views,
			Description:  output.VideoInfo.Description,
			PublishedAt:  output.VideoInfo.PublishedAt,
			ChannelTitle: output.VideoInfo.ChannelTitle,
		},
		Comments:               comments,
		RepresentativeComments: representative,
		Trends: trendsResp{
			MostEngaged:       output.Trends.MostEngaged,
			QuestionRatio:     output.Trends.QuestionRatio,
			TopicDistribution: output.Trends.TopicDistribution,
			SentimentIntensity: sentimentIntensityResp{
				VeryPositive: output.Trends.SentimentIntensity.VeryPositive,
				VeryNegative: output.Trends.SentimentIntensity.VeryNegative,
				Neutral:      output.Trends.SentimentIntensity.Neutral,
			},
			LengthDistribution: lengthDistributionResp{
				Short:  output.Trends.LengthDistribution.Short,
				Medium: output.Trends.LengthDistribution.Medium,
				Long:   output.Trends.LengthDistribution.Long,
			},
		},
		Visual: visualResp{
			SentimentDistribution: sentimentDistributionResp{
				Positive: output.Visual.SentimentDistribution.Positive,
				Neutral:  output.Visual.SentimentDistribution.Neutral,
				Negative: output.Visual.SentimentDistribution.Negative,
			},
			TopKeywords: emptyIfNil(output.Visual.TopKeywords),
		},
		Metadata: metadataResp{
			TotalComments:      output.Metadata.TotalComments,
			HasTranscript:      output.Metadata.HasTranscript,
			DataSource:         output.Metadata.DataSource,
			CommentLimit:       commentLimit,
			TranslationApplied: output.Metadata.TranslationApplied,
			LLMUsed:            output.Metadata.LLMUsed,
			CacheHit:           output.CacheHit,
		},
	}
}

func newCommentResp(c model.Comment) commentResp {
	return commentResp{
		Text:         c.Text,
		OriginalText: c.OriginalText,
		Sentiment:    c.Sentiment,
		Keywords:     emptyIfNil(c.Keywords),
		Author:       c.Author,
		Analysis: commentBreakdown{
			IntensityScore: c.Analysis.IntensityScore,
			Topics:         emptyIfNil(c.Analysis.Topics),
			IsQuestion:     c.Analysis.IsQuestion,
			LengthCategory: c.Analysis.LengthCategory,
			Engagement:     c.Analysis.Engagement,
		},
	}
}

func (h *handler) newRecentResp(records []model.AnalysisRecord) []analysisRecordResp {
	resp := make([]analysisRecordResp, 0, len(records))
	for _, rec := range records {
		resp = append(resp, analysisRecordResp{
			ID:            rec.ID,
			VideoID:       rec.VideoID,
			VideoTitle:    rec.VideoTitle,
			CommentCount:  rec.CommentCount,
			PositiveCount: rec.PositiveCount,
			NegativeCount: rec.NegativeCount,
			NeutralCount:  rec.NeutralCount,
			TopKeywords:   emptyIfNil(rec.TopKeywords),
			Summary:       rec.Summary,
			DataSource:    rec.DataSource,
			LLMUsed:       rec.LLMUsed,
			CreatedAt:     rec.CreatedAt,
		})
	}
	return resp
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
