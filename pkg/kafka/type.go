package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	DefaultTimeout  = 10 * time.Second
	DefaultRetryMax = 3
)

// Config holds configuration for Kafka producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
	Timeout  time.Duration // per request, default 10s
	RetryMax int           // default 3
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RetryMax <= 0 {
		c.RetryMax = DefaultRetryMax
	}
	return c
}

// Message is one record. Headers are sent as Kafka record headers.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// producerImpl implements IProducer.
type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}
