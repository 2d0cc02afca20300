package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestHangulRatio(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "pure korean", text: "한글", want: 1},
		{name: "pure english", text: "hello", want: 0},
		{name: "half and half", text: "한글ab", want: 0.5},
		{name: "jamo counts as hangul", text: "ㅋㅋ", want: 1},
		{name: "empty", text: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hangulRatio(tt.text); got != tt.want {
				t.Errorf("hangulRatio(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTranslateToKorean(t *testing.T) {
	ctx := context.Background()

	t.Run("no llm passes text through", func(t *testing.T) {
		uc := newTestUseCase(nil)
		if got := uc.translateToKorean(ctx, "great video"); got != "great video" {
			t.Errorf("got %q, want unchanged text", got)
		}
	})

	t.Run("mostly korean text skips translation", func(t *testing.T) {
		llm := &fakeLLM{replies: []string{"번역되면 안 됨"}}
		uc := newTestUseCase(llm)
		if got := uc.translateToKorean(ctx, "정말 좋은 영상이에요"); got != "정말 좋은 영상이에요" {
			t.Errorf("got %q, want unchanged text", got)
		}
		if len(llm.inputs) != 0 {
			t.Errorf("llm calls = %d, want 0", len(llm.inputs))
		}
	})

	t.Run("foreign text goes through llm", func(t *testing.T) {
		llm := &fakeLLM{replies: []string{"멋진 영상이네요"}}
		uc := newTestUseCase(llm)
		if got := uc.translateToKorean(ctx, "what a great video"); got != "멋진 영상이네요" {
			t.Errorf("got %q, want translation", got)
		}
	})

	t.Run("strips echoed quotes", func(t *testing.T) {
		llm := &fakeLLM{replies: []string{`"멋진 영상이네요"`}}
		uc := newTestUseCase(llm)
		if got := uc.translateToKorean(ctx, "what a great video"); got != "멋진 영상이네요" {
			t.Errorf("got %q, want unquoted translation", got)
		}
	})

	t.Run("llm failure returns original", func(t *testing.T) {
		llm := &fakeLLM{err: errors.New("timeout")}
		uc := newTestUseCase(llm)
		if got := uc.translateToKorean(ctx, "original text"); got != "original text" {
			t.Errorf("got %q, want original", got)
		}
	})

	t.Run("empty completion returns original", func(t *testing.T) {
		llm := &fakeLLM{replies: []string{""}}
		uc := newTestUseCase(llm)
		if got := uc.translateToKorean(ctx, "original text"); got != "original text" {
			t.Errorf("got %q, want original", got)
		}
	})
}
