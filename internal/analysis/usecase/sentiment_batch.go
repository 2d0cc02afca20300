package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"insight-srv/internal/model"
	"insight-srv/pkg/openai"
)

const sentimentBatchSize = 10

var errEmptyCompletion = errors.New("empty completion")

const sentimentSystemPrompt = `당신은 한국어 댓글의 감정을 분석하는 전문가입니다. 여러 댓글을 한번에 분석해주세요.

감정 분류 기준:
- positive: 긍정적, 좋아함, 칭찬, 감사, 기쁨, 만족, 흥미, 응원 등
- negative: 부정적, 싫어함, 비판, 화남, 실망, 불만, 혐오, 슬픔 등
- neutral: 중립적, 질문, 정보 공유, 단순 사실 진술, 애매한 감정 등

각 댓글에 대해 번호순으로 "positive", "negative", "neutral" 중 하나씩만 한 줄씩 응답하세요.
예시:
positive
negative
neutral`

// analyzeSentimentBatch classifies every comment text, batching LLM
// calls and falling back to the lexicon heuristic when no LLM is
// configured or a batch fails.
func (uc *implUseCase) analyzeSentimentBatch(ctx context.Context, texts []string) []string {
	if uc.llm == nil || len(texts) == 0 {
		return uc.sentimentsBasic(texts)
	}

	results := make([]string, 0, len(texts))
	for i := 0; i < len(texts); i += sentimentBatchSize {
		end := i + sentimentBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[i:end]

		sentiments, err := uc.classifyBatch(ctx, batch)
		if errors.Is(err, errEmptyCompletion) {
			// A blank reply only discredits this batch, not the ones
			// already classified.
			uc.l.Warnf(ctx, "analysis.usecase.analyzeSentimentBatch: empty completion, using heuristic for batch")
			results = append(results, uc.sentimentsBasic(batch)...)
			continue
		}
		if err != nil {
			uc.l.Warnf(ctx, "analysis.usecase.analyzeSentimentBatch: batch failed, using heuristic: %v", err)
			return uc.sentimentsBasic(texts)
		}
		results = append(results, sentiments...)
	}
	return results
}

func (uc *implUseCase) classifyBatch(ctx context.Context, batch []string) ([]string, error) {
	var sb strings.Builder
	for i, text := range batch {
		fmt.Fprintf(&sb, "%d. \"%s\"\n", i+1, text)
	}

	content, err := uc.llm.Complete(ctx, openai.CompletionInput{
		System:      sentimentSystemPrompt,
		Prompt:      fmt.Sprintf("다음 댓글들의 감정을 분석해주세요:\n%s", sb.String()),
		MaxTokens:   100,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errEmptyCompletion
	}

	var sentiments []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		sentiments = append(sentiments, parseSentimentLine(line))
	}

	// Pad or truncate to the batch size.
	if len(sentiments) > len(batch) {
		sentiments = sentiments[:len(batch)]
	}
	for len(sentiments) < len(batch) {
		sentiments = append(sentiments, model.SentimentNeutral)
	}
	return sentiments, nil
}

func parseSentimentLine(line string) string {
	switch line {
	case model.SentimentPositive, model.SentimentNegative, model.SentimentNeutral:
		return line
	}
	switch {
	case strings.Contains(line, model.SentimentPositive):
		return model.SentimentPositive
	case strings.Contains(line, model.SentimentNegative):
		return model.SentimentNegative
	case strings.Contains(line, model.SentimentNeutral):
		return model.SentimentNeutral
	default:
		return model.SentimentNeutral
	}
}

func (uc *implUseCase) sentimentsBasic(texts []string) []string {
	sentiments := make([]string, len(texts))
	for i, text := range texts {
		sentiments[i] = analyzeSentimentBasic(text)
	}
	return sentiments
}
