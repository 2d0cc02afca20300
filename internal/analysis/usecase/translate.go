package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"insight-srv/pkg/openai"
)

// koreanRatio is the share of Hangul runes above which a text is
// treated as already Korean.
const koreanRatio = 0.3

const translateSystemPrompt = "당신은 전문 번역가입니다. 주어진 텍스트를 자연스러운 한국어로 번역해주세요. 이미 한국어인 텍스트는 그대로 반환하세요."

func isHangul(r rune) bool {
	return (r >= 'ㄱ' && r <= 'ㅎ') || (r >= 'ㅏ' && r <= 'ㅣ') || (r >= '가' && r <= '힣')
}

func hangulRatio(text string) float64 {
	if text == "" {
		return 0
	}
	var hangul int
	for _, r := range text {
		if isHangul(r) {
			hangul++
		}
	}
	return float64(hangul) / float64(utf8.RuneCountInString(text))
}

// translateToKorean translates a comment into Korean via the LLM.
// Texts that are already mostly Korean pass through untouched, as does
// everything when no LLM is configured. Translation failures fall back
// to the original text.
func (uc *implUseCase) translateToKorean(ctx context.Context, text string) string {
	if uc.llm == nil {
		return text
	}
	if hangulRatio(text) > koreanRatio {
		return text
	}

	content, err := uc.llm.Complete(ctx, openai.CompletionInput{
		System:      translateSystemPrompt,
		Prompt:      fmt.Sprintf("다음 텍스트를 한국어로 번역해주세요: \"%s\"", text),
		MaxTokens:   200,
		Temperature: 0.3,
	})
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.translateToKorean: translation failed: %v", err)
		return text
	}

	// The model sometimes echoes the surrounding quotes.
	if len(content) >= 2 && strings.HasPrefix(content, `"`) && strings.HasSuffix(content, `"`) {
		content = content[1 : len(content)-1]
	}
	if content == "" {
		return text
	}
	return content
}
