package usecase

import (
	"math"

	"insight-srv/internal/analysis"
	"insight-srv/internal/model"
)

// analyzeCommentTrends aggregates per-comment features over the set.
func analyzeCommentTrends(comments []model.Comment) analysis.CommentTrends {
	trends := analysis.CommentTrends{
		TopicDistribution: make(map[string]int),
	}

	var questions int
	for _, c := range comments {
		a := c.Analysis
		if a.Engagement == model.EngagementHigh {
			trends.MostEngaged++
		}
		if a.IsQuestion {
			questions++
		}
		switch {
		case a.IntensityScore > 0:
			trends.SentimentIntensity.VeryPositive++
		case a.IntensityScore < 0:
			trends.SentimentIntensity.VeryNegative++
		default:
			trends.SentimentIntensity.Neutral++
		}
		switch a.LengthCategory {
		case model.LengthShort:
			trends.LengthDistribution.Short++
		case model.LengthMedium:
			trends.LengthDistribution.Medium++
		case model.LengthLong:
			trends.LengthDistribution.Long++
		}
		for _, topic := range a.Topics {
			trends.TopicDistribution[topic]++
		}
	}

	if len(comments) > 0 {
		trends.QuestionRatio = float64(questions) / float64(len(comments))
	}
	return trends
}

// sentimentDistribution converts class counts into rounded percentages.
func sentimentDistribution(comments []model.Comment) (counts map[string]int, dist analysis.SentimentDistribution) {
	counts = map[string]int{
		model.SentimentPositive: 0,
		model.SentimentNeutral:  0,
		model.SentimentNegative: 0,
	}
	for _, c := range comments {
		counts[c.Sentiment]++
	}

	total := len(comments)
	if total == 0 {
		total = 1
	}
	percent := func(n int) int {
		return int(math.Round(float64(n) / float64(total) * 100))
	}
	dist = analysis.SentimentDistribution{
		Positive: percent(counts[model.SentimentPositive]),
		Neutral:  percent(counts[model.SentimentNeutral]),
		Negative: percent(counts[model.SentimentNegative]),
	}
	return counts, dist
}
