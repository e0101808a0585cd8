package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"tripmap/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// Writer is the part of kafka.Writer the publisher uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic. Messages are keyed by
// owner so one trip's changes stay ordered within a partition.
type kafkaPublisher struct {
	writer Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on brokers.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return NewKafkaPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}, logger)
}

// NewKafkaPublisherWithWriter allows injecting a test writer.
func NewKafkaPublisherWithWriter(writer Writer, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{writer: writer, logger: logger}
}

// PublishTripChanged writes the event as a JSON message.
func (p *kafkaPublisher) PublishTripChanged(ctx context.Context, event *service.TripChangedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for _, key := range attributeKeys {
		if v, ok := attributes[key]; ok {
			headers = append(headers, kafka.Header{Key: key, Value: []byte(v)})
		}
	}

	msg := kafka.Message{
		Key:     []byte(event.OwnerID),
		Value:   value,
		Headers: headers,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "kafka write failed")
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("kind", event.Kind),
		slog.String("op", event.Op),
	)

	return nil
}

// Close flushes and closes the writer.
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
