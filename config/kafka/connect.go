package kafka

import (
	"fmt"
	"sync"

	"trend-srv/config"
	"trend-srv/pkg/kafka"
)

var (
	instance kafka.IProducer
	mu       sync.RWMutex
)

// Connect initializes the Kafka producer using singleton pattern.
func Connect(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	producer, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: cfg.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	instance = producer
	return instance, nil
}

// GetProducer returns the singleton producer or nil when Connect has not succeeded.
func GetProducer() kafka.IProducer {
	mu.RLock()
	defer mu.RUnlock()
	return instance
}

// HealthCheck checks if the Kafka producer is healthy
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("Kafka producer not initialized")
	}
	return instance.HealthCheck()
}

// Disconnect closes the Kafka producer
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
