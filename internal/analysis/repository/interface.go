package repository

import (
	"context"

	"insight-srv/internal/model"
)

// CacheRepository caches serialized analysis results.
type CacheRepository interface {
	GetAnalysis(ctx context.Context, key string) ([]byte, error)
	SaveAnalysis(ctx context.Context, key string, data []byte) error
}

// HistoryRepository persists analysis runs.
type HistoryRepository interface {
	SaveRecord(ctx context.Context, rec model.AnalysisRecord) (model.AnalysisRecord, error)
	ListRecent(ctx context.Context, limit int) ([]model.AnalysisRecord, error)
}
