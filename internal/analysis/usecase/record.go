package usecase

import (
	"context"

	"insight-srv/internal/analysis"
	"insight-srv/internal/model"
)

// recordRun persists the analysis and publishes the completion event.
// Both are best-effort; the response does not depend on them.
func (uc *implUseCase) recordRun(ctx context.Context, videoID string, output analysis.AnalyzeOutput, counts map[string]int) {
	rec := model.AnalysisRecord{
		VideoID:       videoID,
		VideoTitle:    output.VideoInfo.Title,
		CommentCount:  output.Metadata.TotalComments,
		PositiveCount: counts[model.SentimentPositive],
		NegativeCount: counts[model.SentimentNegative],
		NeutralCount:  counts[model.SentimentNeutral],
		TopKeywords:   output.Visual.TopKeywords,
		Summary:       output.Summary,
		DataSource:    output.Metadata.DataSource,
		LLMUsed:       output.Metadata.LLMUsed,
	}

	if uc.historyRepo != nil {
		saved, err := uc.historyRepo.SaveRecord(ctx, rec)
		if err != nil {
			uc.l.Warnf(ctx, "analysis.usecase.recordRun: save failed: %v", err)
		} else {
			rec = saved
		}
	}

	if uc.producer != nil {
		if err := uc.producer.PublishAnalysisCompleted(ctx, rec); err != nil {
			uc.l.Warnf(ctx, "analysis.usecase.recordRun: publish failed: %v", err)
		}
	}
}

// RecentAnalyses returns the newest persisted runs.
func (uc *implUseCase) RecentAnalyses(ctx context.Context, limit int) ([]model.AnalysisRecord, error) {
	if uc.historyRepo == nil {
		return nil, nil
	}
	return uc.historyRepo.ListRecent(ctx, limit)
}
