// Package kafka implements the publish side of the message transport on
// top of segmentio/kafka-go.
package kafka

import (
	"context"

	"orders/internal/core/domain/model/outbox"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Message header keys specific to the transport envelope. Correlation headers
// come from the correlation package.
const (
	HeaderMessageID   = "message_id"
	HeaderMessageType = "message_type"
)

// Publisher writes outbox messages to Kafka. The aggregate id is the
// partition key, so all events of one aggregate land on one partition and
// stay ordered.
//
// Each message type may have its own destination topic; types without an
// entry go to the default topic. The writer must be created without a fixed
// Topic so the per-message topic applies.
type Publisher struct {
	writer       *kafka.Writer
	defaultTopic string
	destinations map[string]string
	log          *zap.Logger
}

// NewPublisher creates a Publisher on top of an existing kafka.Writer.
// destinations maps message types to topics and may be nil.
func NewPublisher(writer *kafka.Writer, defaultTopic string, destinations map[string]string, log *zap.Logger) *Publisher {
	return &Publisher{
		writer:       writer,
		defaultTopic: defaultTopic,
		destinations: destinations,
		log:          log,
	}
}

// topicFor resolves the destination topic of one message type.
func (p *Publisher) topicFor(messageType string) string {
	if topic, ok := p.destinations[messageType]; ok {
		return topic
	}
	return p.defaultTopic
}

// Publish sends one message and waits for the broker's confirmation.
// The stored correlation headers travel on the wire unchanged; the causation
// id was fixed when the message was captured.
func (p *Publisher) Publish(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	headers := []kafka.Header{
		{Key: HeaderMessageID, Value: []byte(message.ID().String())},
		{Key: HeaderMessageType, Value: []byte(message.Type())},
	}
	for key, value := range message.Headers().Encode() {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	msg := kafka.Message{
		Topic:   p.topicFor(message.Type()),
		Key:     []byte(message.AggregateID().String()),
		Value:   message.Payload(),
		Headers: headers,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("failed to publish message",
			zap.String("message_id", message.ID().String()),
			zap.String("message_type", message.Type()),
			zap.Error(err),
		)
		return err
	}

	p.log.Debug("message published",
		zap.String("message_id", message.ID().String()),
		zap.String("message_type", message.Type()),
	)
	return nil
}
