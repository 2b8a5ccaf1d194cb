package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"trend-srv/internal/analysis"
	kafkaDelivery "trend-srv/internal/analysis/delivery/kafka"
	pkgKafka "trend-srv/pkg/kafka"
	"trend-srv/pkg/log"
)

type fakeKafka struct {
	key, value []byte
	headers    map[string]string
	err        error
}

func (f *fakeKafka) Publish(ctx context.Context, msg pkgKafka.Message) error {
	f.key, f.value, f.headers = msg.Key, msg.Value, msg.Headers
	return f.err
}

func (f *fakeKafka) Close() error       { return nil }
func (f *fakeKafka) HealthCheck() error { return nil }

func TestPublishCompleted(t *testing.T) {
	ctx := context.Background()
	evt := analysis.CompletedEvent{
		UserID:           "u1",
		AnalysisID:       "pixel_20240101_000000",
		Product:          "pixel",
		OverallSentiment: "positive",
		PredictedTrend:   "surge",
		Confidence:       0.75,
		CompletedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("encodes message", func(t *testing.T) {
		fk := &fakeKafka{}
		traced := log.SetTraceIDToContext(ctx, "req-1")
		if err := New(log.NewNop(), fk).PublishCompleted(traced, evt); err != nil {
			t.Fatalf("PublishCompleted: %v", err)
		}
		if string(fk.key) != evt.AnalysisID {
			t.Errorf("key mismatch: got %q, want %q", fk.key, evt.AnalysisID)
		}
		if fk.headers[kafkaDelivery.HeaderEventType] != kafkaDelivery.EventTypeAnalysisCompleted {
			t.Errorf("event type header mismatch: got %q", fk.headers[kafkaDelivery.HeaderEventType])
		}
		if fk.headers[kafkaDelivery.HeaderTraceID] != "req-1" {
			t.Errorf("trace id header mismatch: got %q, want %q", fk.headers[kafkaDelivery.HeaderTraceID], "req-1")
		}
		var msg kafkaDelivery.AnalysisCompletedMessage
		if err := json.Unmarshal(fk.value, &msg); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if msg.EventType != kafkaDelivery.EventTypeAnalysisCompleted || msg.PredictedTrend != "surge" || msg.UserID != "u1" {
			t.Errorf("message mismatch: got %+v", msg)
		}
	})

	t.Run("wraps publish error", func(t *testing.T) {
		boom := errors.New("broker down")
		err := New(log.NewNop(), &fakeKafka{err: boom}).PublishCompleted(ctx, evt)
		if !errors.Is(err, boom) {
			t.Errorf("error mismatch: got %v, want %v", err, boom)
		}
	})
}
