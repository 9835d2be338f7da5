package publish

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/logger"
)

// ProducerOption tunes the writers created by a KafkaProducer.
type ProducerOption func(*KafkaProducer)

// WithBatchSize sets how many messages a writer buffers per request.
func WithBatchSize(n int) ProducerOption {
	return func(p *KafkaProducer) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// WithWriteTimeout bounds a single produce request.
func WithWriteTimeout(d time.Duration) ProducerOption {
	return func(p *KafkaProducer) {
		if d > 0 {
			p.writeTimeout = d
		}
	}
}

// WithProducerLogger routes writer errors to l.
func WithProducerLogger(l *logger.Logger) ProducerOption {
	return func(p *KafkaProducer) {
		p.logger = l
	}
}

// KafkaProducer keeps one writer per topic, created on first use.
// Messages are hashed by key so one user's records land on one partition.
type KafkaProducer struct {
	brokers      []string
	batchSize    int
	writeTimeout time.Duration
	logger       *logger.Logger

	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewKafkaProducer creates a KafkaProducer for brokers.
func NewKafkaProducer(brokers []string, opts ...ProducerOption) *KafkaProducer {
	p := &KafkaProducer{
		brokers:      brokers,
		batchSize:    500,
		writeTimeout: 10 * time.Second,
		logger:       logger.NewNop(),
		writers:      make(map[string]*kafka.Writer),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WriteMessages writes msgs to topic synchronously.
func (p *KafkaProducer) WriteMessages(ctx context.Context, topic string, msgs ...kafka.Message) error {
	return p.writer(topic).WriteMessages(ctx, msgs...)
}

func (p *KafkaProducer) writer(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writers[topic]; ok {
		return w
	}

	log := p.logger.With("topic", topic)
	w := &kafka.Writer{
		Addr:                   kafka.TCP(p.brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              p.batchSize,
		WriteTimeout:           p.writeTimeout,
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		AllowAutoTopicCreation: true,
		ErrorLogger:            kafka.LoggerFunc(log.Errorf),
	}
	p.writers[topic] = w
	return w
}

// Close flushes and releases every writer.
func (p *KafkaProducer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(p.writers, topic)
	}
	return errors.Join(errs...)
}
