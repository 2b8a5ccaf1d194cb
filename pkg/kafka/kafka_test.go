package kafka

import (
	"errors"
	"testing"
)

func TestNewProducerValidation(t *testing.T) {
	if _, err := NewProducer(Config{Topic: "t"}); !errors.Is(err, ErrBrokersRequired) {
		t.Errorf("error mismatch: got %v, want %v", err, ErrBrokersRequired)
	}
	if _, err := NewProducer(Config{Brokers: []string{"localhost:9092"}}); !errors.Is(err, ErrTopicRequired) {
		t.Errorf("error mismatch: got %v, want %v", err, ErrTopicRequired)
	}
}

func TestRecordHeaders(t *testing.T) {
	if got := recordHeaders(nil); got != nil {
		t.Errorf("nil headers mismatch: got %v, want nil", got)
	}

	got := recordHeaders(map[string]string{"trace_id": "abc", "event_type": "analysis.completed"})
	if len(got) != 2 {
		t.Fatalf("header count mismatch: got %d, want 2", len(got))
	}
	if string(got[0].Key) != "event_type" || string(got[1].Key) != "trace_id" {
		t.Errorf("header order mismatch: got %s, %s", got[0].Key, got[1].Key)
	}
	if string(got[1].Value) != "abc" {
		t.Errorf("header value mismatch: got %s, want abc", got[1].Value)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.Timeout != DefaultTimeout || cfg.RetryMax != DefaultRetryMax {
		t.Errorf("defaults mismatch: got %v/%d, want %v/%d", cfg.Timeout, cfg.RetryMax, DefaultTimeout, DefaultRetryMax)
	}
}
