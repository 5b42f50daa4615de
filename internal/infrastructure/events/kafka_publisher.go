package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const defaultQuoteEventsTopic = "quote-events"

// Each publish writes a single message synchronously, so the writer's default
// one second batch window would be added to every request.
const publishBatchTimeout = 10 * time.Millisecond

// kafkaMessageWriter abstracts kafka.Writer for testability.
type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaQuotePublisher writes quote events keyed by quote id, so every event
// of a quote lands on the same partition in commit order.
type KafkaQuotePublisher struct {
	writer kafkaMessageWriter
}

var _ interfaces.IQuoteEventPublisher = (*KafkaQuotePublisher)(nil)

// NewKafkaQuotePublisher creates a synchronous writer.
// brokers is a comma-separated list of host:port.
func NewKafkaQuotePublisher(brokers, topic string) *KafkaQuotePublisher {
	return &KafkaQuotePublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(splitBrokers(brokers)...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: publishBatchTimeout,
	}}
}

func newKafkaQuotePublisherWith(w kafkaMessageWriter) *KafkaQuotePublisher {
	return &KafkaQuotePublisher{writer: w}
}

func (p *KafkaQuotePublisher) Publish(ctx context.Context, e entities.QuoteEvent) error {
	b, err := json.Marshal(&e)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.QuoteID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	})
}

func (p *KafkaQuotePublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. Used when no broker is configured.
type NopPublisher struct{}

var _ interfaces.IQuoteEventPublisher = NopPublisher{}

func (NopPublisher) Publish(_ context.Context, e entities.QuoteEvent) error {
	zap.L().Debug("[quote][events] publisher disabled, event dropped",
		zap.String("quote_id", e.QuoteID),
		zap.String("type", string(e.Type)),
	)
	return nil
}

// NewPublisherFromEnv returns a Kafka publisher when KAFKA_BROKERS is set and a
// NopPublisher otherwise. The close func is always safe to call.
func NewPublisherFromEnv() (interfaces.IQuoteEventPublisher, func() error) {
	brokers := os.Getenv("KAFKA_BROKERS")
	if len(splitBrokers(brokers)) == 0 {
		zap.L().Warn("[quote][events] KAFKA_BROKERS not set, events disabled")
		return NopPublisher{}, func() error { return nil }
	}

	topic := os.Getenv("KAFKA_QUOTE_EVENTS_TOPIC")
	if topic == "" {
		topic = defaultQuoteEventsTopic
	}
	p := NewKafkaQuotePublisher(brokers, topic)
	zap.L().Info("[quote][events] kafka publisher configured", zap.String("topic", topic))
	return p, p.Close
}

func splitBrokers(s string) []string {
	var brokers []string
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			brokers = append(brokers, a)
		}
	}
	return brokers
}
