package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"regdesk/pkg/platform/circuit"
)

// KafkaPublisher ships audit events to a Kafka topic. Produces are
// asynchronous; a failed produce is logged and dropped, never surfaced to
// the emitting operation. A circuit breaker drops events without attempting
// a produce while the brokers are unhealthy.
type KafkaPublisher struct {
	client  *kgo.Client
	topic   string
	logger  *slog.Logger
	breaker *circuit.Breaker
}

// NewKafkaPublisher connects a producer to the given brokers. Returns an
// error if the client cannot be constructed; broker availability is only
// discovered on produce.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaPublisher{
		client:  client,
		topic:   topic,
		logger:  logger,
		breaker: circuit.New(5, time.Minute),
	}, nil
}

// Emit serializes the event and hands it to the async producer.
func (p *KafkaPublisher) Emit(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if !p.breaker.Allow() {
		p.logger.Debug("audit circuit open, dropping event",
			"action", event.Action,
			"event_id", event.ID,
		)
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.Action),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.breaker.Failure()
			p.logger.Error("audit event produce failed",
				"action", event.Action,
				"event_id", event.ID,
				"error", err,
			)
			return
		}
		p.breaker.Success()
	})
	return nil
}

// Close flushes outstanding produces and releases the client.
func (p *KafkaPublisher) Close(ctx context.Context) error {
	if err := p.client.Flush(ctx); err != nil {
		return fmt.Errorf("flush audit producer: %w", err)
	}
	p.client.Close()
	return nil
}
