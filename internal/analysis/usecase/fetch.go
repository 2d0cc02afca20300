package usecase

import (
	"context"
	"time"

	"insight-srv/internal/analysis"
	"insight-srv/internal/model"
	"insight-srv/pkg/youtube"
)

type rawComment struct {
	Text   string
	Author string
}

// fetchVideoInfo loads display metadata for the video. API failures
// degrade to a placeholder so the analysis can still run; the bool
// reports whether real data was fetched.
func (uc *implUseCase) fetchVideoInfo(ctx context.Context, videoID string) (model.VideoInfo, bool) {
	video, err := uc.youtube.GetVideo(ctx, videoID)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.fetchVideoInfo: falling back to placeholder: %v", err)
		return model.VideoInfo{
			Title:        "YouTube 영상 분석",
			Thumbnail:    youtube.ThumbnailURL(videoID),
			Duration:     "알 수 없음",
			Views:        "조회수 정보 없음",
			Description:  "",
			ChannelTitle: "알 수 없음",
		}, false
	}

	return model.VideoInfo{
		Title:        video.Title,
		Thumbnail:    video.ThumbnailURL,
		Duration:     youtube.FormatDuration(video.Duration),
		Views:        youtube.FormatViewsGrouped(video.ViewCount),
		Description:  video.Description,
		PublishedAt:  video.PublishedAt.Format(time.RFC3339),
		ChannelTitle: video.ChannelTitle,
	}, true
}

// fetchComments loads top-level comments, degrading to the mock set
// when the API fails. limit of AllComments fetches up to the ceiling.
func (uc *implUseCase) fetchComments(ctx context.Context, videoID string, limit int) []rawComment {
	fetchLimit := limit
	if limit == analysis.AllComments {
		fetchLimit = analysis.AllCommentsCeiling
	}

	comments, err := uc.youtube.ListCommentThreads(ctx, videoID, fetchLimit)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.fetchComments: falling back to mock comments: %v", err)
		return mockComments()
	}

	raw := make([]rawComment, 0, len(comments))
	for _, c := range comments {
		raw = append(raw, rawComment{Text: c.Text, Author: c.Author})
	}
	return raw
}

// fetchTranscript loads the caption track; a missing track is not an
// error for the pipeline.
func (uc *implUseCase) fetchTranscript(ctx context.Context, videoID string) (string, bool) {
	transcript, ok, err := uc.captions.GetTranscript(ctx, videoID)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.fetchTranscript: %v", err)
		return "", false
	}
	return transcript, ok
}

func mockComments() []rawComment {
	return []rawComment{
		{Text: "정말 유익한 영상이네요! 많이 배웠습니다.", Author: "viewer1"},
		{Text: "설명이 너무 좋아요. 이해하기 쉽게 설명해주셔서 감사합니다.", Author: "viewer2"},
		{Text: "이런 내용 더 많이 올려주세요", Author: "viewer3"},
		{Text: "음... 조금 아쉬운 부분이 있네요", Author: "viewer4"},
		{Text: "와 정말 대박이네요! 최고입니다", Author: "viewer5"},
		{Text: "이해가 잘 안되는 부분이 있어요", Author: "viewer6"},
		{Text: "다음 영상도 기대됩니다!", Author: "viewer7"},
		{Text: "좋은 정보 공유해주셔서 감사해요", Author: "viewer8"},
		{Text: "조금 더 자세한 설명이 있으면 좋겠어요", Author: "viewer9"},
		{Text: "완전 꿀팁이네요 ㅎㅎ", Author: "viewer10"},
	}
}
