package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"trend-srv/internal/analysis"
	kafkaDelivery "trend-srv/internal/analysis/delivery/kafka"
	pkgKafka "trend-srv/pkg/kafka"
	"trend-srv/pkg/log"
)

// PublishCompleted publishes an analysis.completed event keyed by analysis id
func (p *implProducer) PublishCompleted(ctx context.Context, evt analysis.CompletedEvent) error {
	msg := kafkaDelivery.AnalysisCompletedMessage{
		EventType:        kafkaDelivery.EventTypeAnalysisCompleted,
		UserID:           evt.UserID,
		AnalysisID:       evt.AnalysisID,
		Product:          evt.Product,
		OverallSentiment: evt.OverallSentiment,
		PredictedTrend:   evt.PredictedTrend,
		Confidence:       evt.Confidence,
		Degraded:         evt.Degraded,
		CompletedAt:      evt.CompletedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis completed: %w", err)
	}

	headers := map[string]string{kafkaDelivery.HeaderEventType: kafkaDelivery.EventTypeAnalysisCompleted}
	if traceID := log.GetTraceIDFromContext(ctx); traceID != "" {
		headers[kafkaDelivery.HeaderTraceID] = traceID
	}

	if err := p.producer.Publish(ctx, pkgKafka.Message{Key: []byte(evt.AnalysisID), Value: body, Headers: headers}); err != nil {
		return fmt.Errorf("failed to publish analysis completed: %w", err)
	}

	p.l.Infof(ctx, "Published analysis completed for %s", evt.AnalysisID)
	return nil
}
