package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"insight-srv/pkg/openai"
)

const (
	basicKeywordLimit    = 8
	advancedKeywordLimit = 10
	maxKeywordLength     = 20
)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"의", "이", "가", "을", "를", "에", "에서", "와", "과", "로", "으로", "는", "은", "도", "만",
		"부터", "까지", "한테", "께", "이다", "있다", "없다", "하다", "되다", "아니다", "같다",
		"그냥", "진짜", "정말", "너무", "매우", "조금", "많이", "좀", "아주", "완전", "엄청",
		"그리고", "그런데", "하지만", "그래서", "따라서", "그러면", "만약", "예를 들어",
		"영상", "댓글", "시청", "유튜브", "채널", "구독", "좋아요", "영상이", "정말로",
	} {
		stopWords[w] = struct{}{}
	}
}

func isKeywordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) ||
		(r >= 'ㄱ' && r <= '힣')
}

// extractBasicKeywords tokenizes the text, drops stopwords and
// one-rune tokens, and returns the words seen at least twice, most
// frequent first.
func extractBasicKeywords(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if isKeywordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, text)

	frequency := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(cleaned) {
		word = strings.ToLower(word)
		if utf8.RuneCountInString(word) <= 1 {
			continue
		}
		if _, ok := stopWords[word]; ok {
			continue
		}
		if _, seen := frequency[word]; !seen {
			order = append(order, word)
		}
		frequency[word]++
	}

	var keywords []string
	for _, word := range order {
		if frequency[word] >= 2 {
			keywords = append(keywords, word)
		}
	}
	sort.SliceStable(keywords, func(i, j int) bool {
		return frequency[keywords[i]] > frequency[keywords[j]]
	})

	if len(keywords) > basicKeywordLimit {
		keywords = keywords[:basicKeywordLimit]
	}
	return keywords
}

// extractAdvancedKeywords asks the LLM for the video's core keywords,
// falling back to frequency extraction over all available text.
func (uc *implUseCase) extractAdvancedKeywords(ctx context.Context, transcript string, comments []string, videoTitle string) []string {
	fallback := func() []string {
		return extractBasicKeywords(fmt.Sprintf("%s %s %s", videoTitle, transcript, strings.Join(comments, " ")))
	}
	if uc.llm == nil {
		return fallback()
	}

	commentSample := strings.Join(headStrings(comments, 30), " ")
	contentSection := ""
	if transcript != "" {
		contentSection = fmt.Sprintf("영상 내용: %s\n\n", truncateRunes(transcript, 1500))
	}

	prompt := fmt.Sprintf(`다음 YouTube 영상의 정보를 분석하여 핵심 키워드를 추출해주세요:

영상 제목: "%s"

%s댓글 반응: %s

위 내용을 바탕으로 다음 기준으로 8-10개의 핵심 키워드를 추출해주세요:
1. 영상의 주요 주제와 개념
2. 시청자들이 자주 언급하는 중요한 단어
3. 영상의 가치나 특징을 나타내는 용어
4. 검색이나 추천에 도움이 될 만한 키워드

키워드만 쉼표로 구분하여 나열해주세요. (예: 키워드1, 키워드2, 키워드3)`, videoTitle, contentSection, commentSample)

	content, err := uc.llm.Complete(ctx, openai.CompletionInput{
		System:      "당신은 콘텐츠 분석 전문가입니다. 주어진 텍스트에서 가장 중요하고 의미있는 키워드를 추출합니다.",
		Prompt:      prompt,
		MaxTokens:   200,
		Temperature: 0.3,
	})
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.extractAdvancedKeywords: completion failed: %v", err)
		return fallback()
	}

	var keywords []string
	for _, kw := range strings.Split(content, ",") {
		kw = strings.TrimSpace(kw)
		n := utf8.RuneCountInString(kw)
		if n == 0 || n >= maxKeywordLength {
			continue
		}
		keywords = append(keywords, kw)
		if len(keywords) == advancedKeywordLimit {
			break
		}
	}
	if len(keywords) == 0 {
		return fallback()
	}
	return keywords
}

func headStrings(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
