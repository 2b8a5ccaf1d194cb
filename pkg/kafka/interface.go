package kafka

import "context"

// IProducer publishes keyed messages to one topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	// Publish blocks until the leader acknowledges msg or ctx is done.
	Publish(ctx context.Context, msg Message) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a new synchronous Kafka producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg.withDefaults())
}
