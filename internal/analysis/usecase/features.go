package usecase

import (
	"sort"
	"strings"
	"unicode/utf8"

	"insight-srv/internal/model"
)

var strongPositiveWords = []string{"완전", "정말", "너무", "엄청", "대박", "최고", "사랑", "감동", "놀라운"}
var strongNegativeWords = []string{"최악", "끔찍", "싫어", "짜증", "화나", "실망", "별로", "무서운"}

var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{model.TopicContent, []string{"내용", "영상", "정보", "설명", "이야기", "주제"}},
	{model.TopicTechnical, []string{"기술", "프로그래밍", "코딩", "개발", "알고리즘", "시스템"}},
	{model.TopicEducational, []string{"배움", "공부", "학습", "교육", "강의", "수업"}},
	{model.TopicEntertainment, []string{"재미", "웃음", "재밌", "즐거", "유머", "오락"}},
	{model.TopicPersonal, []string{"경험", "생각", "의견", "느낌", "개인적", "저는"}},
}

var questionMarkers = []string{"?", "궁금", "어떻", "뭐"}

// analyzeCommentFeatures derives intensity, topics, question-ness and
// length bucket for one comment.
func analyzeCommentFeatures(text string) model.CommentAnalysis {
	var intensity int
	for _, word := range strongPositiveWords {
		if strings.Contains(text, word) {
			intensity++
		}
	}
	for _, word := range strongNegativeWords {
		if strings.Contains(text, word) {
			intensity--
		}
	}

	var topics []string
	for _, tk := range topicKeywords {
		for _, keyword := range tk.keywords {
			if strings.Contains(text, keyword) {
				topics = append(topics, tk.topic)
				break
			}
		}
	}

	isQuestion := false
	for _, marker := range questionMarkers {
		if strings.Contains(text, marker) {
			isQuestion = true
			break
		}
	}

	length := utf8.RuneCountInString(text)
	lengthCategory := model.LengthLong
	switch {
	case length < 20:
		lengthCategory = model.LengthShort
	case length < 100:
		lengthCategory = model.LengthMedium
	}

	engagement := model.EngagementLow
	if intensity != 0 || isQuestion {
		engagement = model.EngagementHigh
	}

	return model.CommentAnalysis{
		IntensityScore: intensity,
		Topics:         topics,
		IsQuestion:     isQuestion,
		LengthCategory: lengthCategory,
		Engagement:     engagement,
	}
}

// selectRepresentativeComments picks up to count comments per
// sentiment class, favoring keyword-rich, reasonably sized comments.
func selectRepresentativeComments(comments []model.Comment, count int) map[string][]model.Comment {
	representative := map[string][]model.Comment{
		model.SentimentPositive: {},
		model.SentimentNeutral:  {},
		model.SentimentNegative: {},
	}

	for sentiment := range representative {
		var candidates []model.Comment
		for _, c := range comments {
			if c.Sentiment != sentiment {
				continue
			}
			n := utf8.RuneCountInString(c.Text)
			if n >= 10 && n <= 200 {
				candidates = append(candidates, c)
			}
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return representativeScore(candidates[i]) > representativeScore(candidates[j])
		})

		if len(candidates) > count {
			candidates = candidates[:count]
		}
		representative[sentiment] = candidates
	}

	return representative
}

func representativeScore(c model.Comment) int {
	score := len(c.Keywords) * 2
	if utf8.RuneCountInString(c.Text) > 30 {
		score++
	}
	return score
}
