package usecase

import (
	"reflect"
	"strings"
	"testing"

	"insight-srv/internal/model"
)

func TestAnalyzeCommentFeatures(t *testing.T) {
	t.Run("intensity counts strong words", func(t *testing.T) {
		got := analyzeCommentFeatures("완전 대박 최고")
		if got.IntensityScore != 3 {
			t.Errorf("IntensityScore = %d, want 3", got.IntensityScore)
		}
		if got.Engagement != model.EngagementHigh {
			t.Errorf("Engagement = %q, want %q", got.Engagement, model.EngagementHigh)
		}
	})

	t.Run("strong negatives subtract", func(t *testing.T) {
		got := analyzeCommentFeatures("완전 최악")
		if got.IntensityScore != 0 {
			t.Errorf("IntensityScore = %d, want 0", got.IntensityScore)
		}
	})

	t.Run("topic detection", func(t *testing.T) {
		got := analyzeCommentFeatures("코딩 강의 내용이 재밌어요 제 경험상")
		want := []string{
			model.TopicContent,
			model.TopicTechnical,
			model.TopicEducational,
			model.TopicEntertainment,
			model.TopicPersonal,
		}
		if !reflect.DeepEqual(got.Topics, want) {
			t.Errorf("Topics = %v, want %v", got.Topics, want)
		}
	})

	t.Run("question markers", func(t *testing.T) {
		for _, text := range []string{"이게 뭔가요?", "궁금하네", "어떻게 하나요", "뭐지"} {
			if got := analyzeCommentFeatures(text); !got.IsQuestion {
				t.Errorf("IsQuestion(%q) = false, want true", text)
			}
		}
		if got := analyzeCommentFeatures("재밌게 봤습니다"); got.IsQuestion {
			t.Error("IsQuestion = true, want false")
		}
	})

	t.Run("length buckets", func(t *testing.T) {
		tests := []struct {
			text string
			want string
		}{
			{strings.Repeat("가", 19), model.LengthShort},
			{strings.Repeat("가", 20), model.LengthMedium},
			{strings.Repeat("가", 99), model.LengthMedium},
			{strings.Repeat("가", 100), model.LengthLong},
		}
		for _, tt := range tests {
			if got := analyzeCommentFeatures(tt.text); got.LengthCategory != tt.want {
				t.Errorf("LengthCategory(%d runes) = %q, want %q", len([]rune(tt.text)), got.LengthCategory, tt.want)
			}
		}
	})

	t.Run("question alone raises engagement", func(t *testing.T) {
		got := analyzeCommentFeatures("이게 무슨 말인가요?")
		if got.Engagement != model.EngagementHigh {
			t.Errorf("Engagement = %q, want %q", got.Engagement, model.EngagementHigh)
		}
	})

	t.Run("flat comment has low engagement", func(t *testing.T) {
		got := analyzeCommentFeatures("오늘 봤습니다")
		if got.Engagement != model.EngagementLow {
			t.Errorf("Engagement = %q, want %q", got.Engagement, model.EngagementLow)
		}
	})
}

func TestSelectRepresentativeComments(t *testing.T) {
	mk := func(text, sentiment string, keywords ...string) model.Comment {
		return model.Comment{Text: text, Sentiment: sentiment, Keywords: keywords}
	}

	t.Run("all sentiment keys always present", func(t *testing.T) {
		got := selectRepresentativeComments(nil, 3)
		for _, sentiment := range []string{model.SentimentPositive, model.SentimentNeutral, model.SentimentNegative} {
			if _, ok := got[sentiment]; !ok {
				t.Errorf("missing %q key", sentiment)
			}
			if len(got[sentiment]) != 0 {
				t.Errorf("len(got[%q]) = %d, want 0", sentiment, len(got[sentiment]))
			}
		}
	})

	t.Run("filters by length window", func(t *testing.T) {
		comments := []model.Comment{
			mk("짧다", model.SentimentPositive),
			mk(strings.Repeat("가", 201), model.SentimentPositive),
			mk("충분히 긴 정상 댓글입니다", model.SentimentPositive),
		}
		got := selectRepresentativeComments(comments, 3)
		if len(got[model.SentimentPositive]) != 1 {
			t.Fatalf("len = %d, want 1", len(got[model.SentimentPositive]))
		}
		if got[model.SentimentPositive][0].Text != "충분히 긴 정상 댓글입니다" {
			t.Errorf("picked %q", got[model.SentimentPositive][0].Text)
		}
	})

	t.Run("keyword-rich comments win", func(t *testing.T) {
		comments := []model.Comment{
			mk("키워드가 없는 평범한 댓글", model.SentimentNeutral),
			mk("키워드가 많은 알찬 댓글", model.SentimentNeutral, "키워드", "알찬"),
		}
		got := selectRepresentativeComments(comments, 1)
		if len(got[model.SentimentNeutral]) != 1 {
			t.Fatalf("len = %d, want 1", len(got[model.SentimentNeutral]))
		}
		if got[model.SentimentNeutral][0].Text != "키워드가 많은 알찬 댓글" {
			t.Errorf("picked %q", got[model.SentimentNeutral][0].Text)
		}
	})

	t.Run("caps per sentiment", func(t *testing.T) {
		var comments []model.Comment
		for i := 0; i < 5; i++ {
			comments = append(comments, mk("부정적인 감정의 댓글입니다", model.SentimentNegative))
		}
		got := selectRepresentativeComments(comments, 3)
		if len(got[model.SentimentNegative]) != 3 {
			t.Errorf("len = %d, want 3", len(got[model.SentimentNegative]))
		}
	})
}
