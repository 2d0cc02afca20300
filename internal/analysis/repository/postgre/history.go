package postgre

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"insight-srv/internal/model"
)

// SaveRecord persists one analysis run.
func (r *implHistoryRepository) SaveRecord(ctx context.Context, rec model.AnalysisRecord) (model.AnalysisRecord, error) {
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now()

	query := `
		INSERT INTO insight.analyses (id, video_id, video_title, comment_count, positive_count, negative_count, neutral_count, top_keywords, summary, data_source, llm_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.VideoID, rec.VideoTitle,
		rec.CommentCount, rec.PositiveCount, rec.NegativeCount, rec.NeutralCount,
		pq.Array(rec.TopKeywords), rec.Summary, rec.DataSource, rec.LLMUsed,
		rec.CreatedAt,
	)
	if err != nil {
		return model.AnalysisRecord{}, fmt.Errorf("SaveRecord: %w", err)
	}

	return rec, nil
}

// ListRecent returns the newest analysis runs.
func (r *implHistoryRepository) ListRecent(ctx context.Context, limit int) ([]model.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, video_id, video_title, comment_count, positive_count, negative_count, neutral_count, top_keywords, summary, data_source, llm_used, created_at
		FROM insight.analyses
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ListRecent: %w", err)
	}
	defer rows.Close()

	var records []model.AnalysisRecord
	for rows.Next() {
		var rec model.AnalysisRecord
		if err := rows.Scan(
			&rec.ID, &rec.VideoID, &rec.VideoTitle,
			&rec.CommentCount, &rec.PositiveCount, &rec.NegativeCount, &rec.NeutralCount,
			pq.Array(&rec.TopKeywords), &rec.Summary, &rec.DataSource, &rec.LLMUsed,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListRecent scan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecent rows: %w", err)
	}

	return records, nil
}
