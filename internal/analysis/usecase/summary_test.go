package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"insight-srv/internal/model"
)

func TestGenerateSummary(t *testing.T) {
	ctx := context.Background()
	info := model.VideoInfo{Title: "테스트 영상", ChannelTitle: "테스트 채널", Description: "영상 설명"}

	t.Run("no llm with transcript uses template", func(t *testing.T) {
		uc := newTestUseCase(nil)
		got := uc.generateSummary(ctx, "자막 내용", info, true, nil)
		if !strings.Contains(got, "테스트 영상") || !strings.Contains(got, "테스트 채널") {
			t.Errorf("template missing video info: %q", got)
		}
	})

	t.Run("no llm without transcript reports missing key", func(t *testing.T) {
		uc := newTestUseCase(nil)
		want := "영상 요약을 생성할 수 없습니다. API 키를 확인해주세요."
		if got := uc.generateSummary(ctx, "", info, true, nil); got != want {
			t.Errorf("summary = %q, want %q", got, want)
		}
	})

	t.Run("placeholder info never gets the transcript template", func(t *testing.T) {
		uc := newTestUseCase(nil)
		want := "영상 요약을 생성할 수 없습니다. API 키를 확인해주세요."
		if got := uc.generateSummary(ctx, "자막 내용", info, false, nil); got != want {
			t.Errorf("summary = %q, want %q", got, want)
		}
	})

	t.Run("llm with transcript uses transcript prompt", func(t *testing.T) {
		llm := &fakeLLM{replies: []string{"요약 결과"}}
		uc := newTestUseCase(llm)
		got := uc.generateSummary(ctx, "자막 내용", info, true, []string{"댓글"})
		if got != "요약 결과" {
			t.Errorf("summary = %q, want llm reply", got)
		}
		if len(llm.inputs) != 1 {
			t.Fatalf("llm calls = %d, want 1", len(llm.inputs))
		}
		if !strings.Contains(llm.inputs[0].Prompt, "자막 내용:") {
			t.Errorf("prompt missing transcript section: %q", llm.inputs[0].Prompt)
		}
		if llm.inputs[0].MaxTokens != 400 {
			t.Errorf("MaxTokens = %d, want 400", llm.inputs[0].MaxTokens)
		}
	})

	t.Run("llm without transcript uses description prompt", func(t *testing.T) {
		llm := &fakeLLM{replies: []string{"요약 결과"}}
		uc := newTestUseCase(llm)
		uc.generateSummary(ctx, "", info, true, nil)
		if len(llm.inputs) != 1 {
			t.Fatalf("llm calls = %d, want 1", len(llm.inputs))
		}
		if !strings.Contains(llm.inputs[0].Prompt, "설명: 영상 설명") {
			t.Errorf("prompt missing description section: %q", llm.inputs[0].Prompt)
		}
	})

	t.Run("empty description rendered as none", func(t *testing.T) {
		llm := &fakeLLM{replies: []string{"요약 결과"}}
		uc := newTestUseCase(llm)
		bare := model.VideoInfo{Title: "제목", ChannelTitle: "채널"}
		uc.generateSummary(ctx, "", bare, true, nil)
		if !strings.Contains(llm.inputs[0].Prompt, "설명: 설명 없음") {
			t.Errorf("prompt missing default description: %q", llm.inputs[0].Prompt)
		}
	})

	t.Run("llm failure falls back to template", func(t *testing.T) {
		llm := &fakeLLM{err: errors.New("unavailable")}
		uc := newTestUseCase(llm)
		got := uc.generateSummary(ctx, "자막", info, true, nil)
		if !strings.Contains(got, "테스트 영상") {
			t.Errorf("fallback missing title: %q", got)
		}
	})

	t.Run("empty completion falls back to template", func(t *testing.T) {
		llm := &fakeLLM{replies: []string{""}}
		uc := newTestUseCase(llm)
		got := uc.generateSummary(ctx, "자막", info, true, nil)
		if !strings.Contains(got, "테스트 채널") {
			t.Errorf("fallback missing channel: %q", got)
		}
	})
}
