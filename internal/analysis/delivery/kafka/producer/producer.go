package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkaDelivery "insight-srv/internal/analysis/delivery/kafka"
	"insight-srv/internal/model"
)

// PublishAnalysisCompleted publishes an analysis completion event
func (p *implProducer) PublishAnalysisCompleted(ctx context.Context, rec model.AnalysisRecord) error {
	msg := kafkaDelivery.AnalysisCompletedMessage{
		AnalysisID:    rec.ID,
		VideoID:       rec.VideoID,
		VideoTitle:    rec.VideoTitle,
		CommentCount:  rec.CommentCount,
		PositiveCount: rec.PositiveCount,
		NegativeCount: rec.NegativeCount,
		NeutralCount:  rec.NeutralCount,
		DataSource:    rec.DataSource,
		LLMUsed:       rec.LLMUsed,
		CompletedAt:   time.Now(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis completed event: %w", err)
	}

	key := []byte(rec.VideoID)
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish analysis completed event: %w", err)
	}

	p.l.Infof(ctx, "Published analysis completed for video %s: %d comments", rec.VideoID, rec.CommentCount)
	return nil
}
