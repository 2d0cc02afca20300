package producer

import (
	"insight-srv/internal/analysis"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
)

// implProducer implements analysis.Producer
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new analysis event producer
func New(l log.Logger, producer pkgKafka.IProducer) analysis.Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
