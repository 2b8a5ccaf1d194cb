package producer

import (
	"trend-srv/internal/analysis"
	pkgKafka "trend-srv/pkg/kafka"
	"trend-srv/pkg/log"
)

// Producer interface for analysis domain
type Producer interface {
	analysis.Publisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new analysis producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
