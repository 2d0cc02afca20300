package analysis

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	RecentAnalyses(ctx context.Context, limit int) ([]model.AnalysisRecord, error)
}

// Producer publishes analysis lifecycle events.
type Producer interface {
	PublishAnalysisCompleted(ctx context.Context, rec model.AnalysisRecord) error
}
