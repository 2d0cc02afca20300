package usecase

import (
	"testing"

	"insight-srv/internal/model"
)

func TestAnalyzeCommentTrends(t *testing.T) {
	comments := []model.Comment{
		{Analysis: model.CommentAnalysis{
			IntensityScore: 2,
			Topics:         []string{model.TopicContent, model.TopicTechnical},
			IsQuestion:     false,
			LengthCategory: model.LengthShort,
			Engagement:     model.EngagementHigh,
		}},
		{Analysis: model.CommentAnalysis{
			IntensityScore: -1,
			Topics:         []string{model.TopicContent},
			IsQuestion:     true,
			LengthCategory: model.LengthMedium,
			Engagement:     model.EngagementHigh,
		}},
		{Analysis: model.CommentAnalysis{
			IntensityScore: 0,
			LengthCategory: model.LengthLong,
			Engagement:     model.EngagementLow,
		}},
		{Analysis: model.CommentAnalysis{
			IntensityScore: 0,
			LengthCategory: model.LengthMedium,
			Engagement:     model.EngagementLow,
		}},
	}

	trends := analyzeCommentTrends(comments)

	if trends.MostEngaged != 2 {
		t.Errorf("MostEngaged = %d, want 2", trends.MostEngaged)
	}
	if want := 0.25; trends.QuestionRatio != want {
		t.Errorf("QuestionRatio = %v, want %v", trends.QuestionRatio, want)
	}
	if trends.SentimentIntensity.VeryPositive != 1 {
		t.Errorf("VeryPositive = %d, want 1", trends.SentimentIntensity.VeryPositive)
	}
	if trends.SentimentIntensity.VeryNegative != 1 {
		t.Errorf("VeryNegative = %d, want 1", trends.SentimentIntensity.VeryNegative)
	}
	if trends.SentimentIntensity.Neutral != 2 {
		t.Errorf("Neutral = %d, want 2", trends.SentimentIntensity.Neutral)
	}
	if trends.LengthDistribution.Short != 1 || trends.LengthDistribution.Medium != 2 || trends.LengthDistribution.Long != 1 {
		t.Errorf("LengthDistribution = %+v, want 1/2/1", trends.LengthDistribution)
	}
	if trends.TopicDistribution[model.TopicContent] != 2 {
		t.Errorf("TopicDistribution[content] = %d, want 2", trends.TopicDistribution[model.TopicContent])
	}
	if trends.TopicDistribution[model.TopicTechnical] != 1 {
		t.Errorf("TopicDistribution[technical] = %d, want 1", trends.TopicDistribution[model.TopicTechnical])
	}
}

func TestAnalyzeCommentTrendsEmpty(t *testing.T) {
	trends := analyzeCommentTrends(nil)
	if trends.QuestionRatio != 0 {
		t.Errorf("QuestionRatio = %v, want 0", trends.QuestionRatio)
	}
	if trends.MostEngaged != 0 {
		t.Errorf("MostEngaged = %d, want 0", trends.MostEngaged)
	}
}

func TestSentimentDistribution(t *testing.T) {
	t.Run("rounded percentages", func(t *testing.T) {
		comments := []model.Comment{
			{Sentiment: model.SentimentPositive},
			{Sentiment: model.SentimentPositive},
			{Sentiment: model.SentimentNegative},
		}
		counts, dist := sentimentDistribution(comments)
		if counts[model.SentimentPositive] != 2 || counts[model.SentimentNegative] != 1 || counts[model.SentimentNeutral] != 0 {
			t.Errorf("counts = %v", counts)
		}
		if dist.Positive != 67 {
			t.Errorf("Positive = %d, want 67", dist.Positive)
		}
		if dist.Negative != 33 {
			t.Errorf("Negative = %d, want 33", dist.Negative)
		}
		if dist.Neutral != 0 {
			t.Errorf("Neutral = %d, want 0", dist.Neutral)
		}
	})

	t.Run("empty set yields zero percentages", func(t *testing.T) {
		counts, dist := sentimentDistribution(nil)
		if counts[model.SentimentPositive] != 0 {
			t.Errorf("positive count = %d, want 0", counts[model.SentimentPositive])
		}
		if dist.Positive != 0 || dist.Neutral != 0 || dist.Negative != 0 {
			t.Errorf("dist = %+v, want zeros", dist)
		}
	})
}
