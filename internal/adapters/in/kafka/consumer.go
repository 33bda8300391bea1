// Package kafka implements the consume side of the message transport: it
// reads integration events from other services, restores the correlation
// context and acting identity from the wire headers, and routes each event to
// its application handler.
//
// Offsets are committed manually. A message is committed when its handler
// succeeded or failed with a terminal business error (retrying would not
// change the outcome). Transient failures are retried in place: committing
// any later offset would acknowledge the failed message too, so the consumer
// never moves past a message it has not resolved.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appevents "orders/internal/core/application/usecases/events"
	"orders/internal/pkg/correlation"
	"orders/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Message header keys of the transport envelope.
const (
	HeaderMessageID   = "message_id"
	HeaderMessageType = "message_type"
)

// Backoff schedule for retrying a transiently failed message in place.
const (
	retryBaseDelay = time.Second
	retryMaxDelay  = time.Minute
)

// Inbound message type names as published by the collaborating services.
const (
	TypeDeliveryCompleted           = "delivery_completed"
	TypeDeliveryFailed              = "delivery_failed"
	TypeDeliveryStarted             = "delivery_started"
	TypeParcelDeleted               = "parcel_deleted"
	TypeResourceReserved            = "resource_reserved"
	TypeResourceReservationCanceled = "resource_reservation_canceled"
	TypeCustomerCreated             = "customer_created"
)

// Handlers bundles the application-layer handlers the consumer routes to:
// the command handlers and the integration-event appliers.
type Handlers struct {
	Commands        CommandHandlers
	Delivery        appevents.DeliveryEventsHandler
	Resources       appevents.ResourceEventsHandler
	ParcelDeleted   appevents.ParcelDeletedEventHandler
	CustomerCreated appevents.CustomerCreatedEventHandler
}

// Consumer reads integration events from Kafka and dispatches them.
type Consumer struct {
	reader   *kafka.Reader
	handlers Handlers
	log      *zap.Logger
}

// NewConsumer creates a Consumer on top of an existing kafka.Reader. The
// reader must have a consumer group configured; offsets are committed through
// it.
func NewConsumer(reader *kafka.Reader, handlers Handlers, log *zap.Logger) *Consumer {
	return &Consumer{
		reader:   reader,
		handlers: handlers,
		log:      log,
	}
}

// Run consumes messages until ctx is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info("starting consumer",
		zap.String("topic", c.reader.Config().Topic),
		zap.Strings("brokers", c.reader.Config().Brokers),
	)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.log.Info("consumer stopped", zap.String("topic", c.reader.Config().Topic))
				return nil
			}
			c.log.Error("failed to fetch message", zap.Error(err))
			continue
		}

		if err := c.handle(ctx, msg); err != nil {
			// Canceled mid-retry; the offset stays uncommitted.
			c.log.Info("consumer stopped", zap.String("topic", c.reader.Config().Topic))
			return nil
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.log.Error("failed to commit offset", zap.Error(err))
		}
	}
}

// handle resolves one message: processed successfully or rejected for good.
// Only then may its offset be committed.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) error {
	messageType := headerValue(msg, HeaderMessageType)
	return resolveWithRetry(ctx, c.log, messageType, retryBaseDelay, func(ctx context.Context) error {
		return c.process(ctx, msg)
	})
}

// resolveWithRetry runs attempt until it succeeds or fails with a terminal
// business error, backing off exponentially between transient failures. A
// committed Kafka offset acknowledges every earlier offset of the partition,
// so a transiently failed message must be resolved here, not skipped.
// Returns ctx.Err() when canceled while waiting.
func resolveWithRetry(
	ctx context.Context,
	log *zap.Logger,
	messageType string,
	baseDelay time.Duration,
	attempt func(context.Context) error,
) error {
	delay := baseDelay
	for {
		err := attempt(ctx)
		if err == nil {
			return nil
		}
		if errs.IsTerminal(err) {
			// Retrying cannot change the outcome.
			log.Warn("message rejected",
				zap.String("message_type", messageType),
				zap.Error(err),
			)
			return nil
		}

		log.Error("transient failure, retrying message",
			zap.String("message_type", messageType),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
		if delay > retryMaxDelay {
			delay = retryMaxDelay
		}
	}
}

// process restores the messaging context and dispatches one message.
func (c *Consumer) process(ctx context.Context, msg kafka.Message) error {
	headers := headersMap(msg)

	messageID := headerValue(msg, HeaderMessageID)
	if messageID == "" {
		// No id on the wire: derive a stable one from the coordinates.
		messageID = fmt.Sprintf("%s/%d/%d", msg.Topic, msg.Partition, msg.Offset)
	}

	ctx = correlation.WithContext(ctx, correlation.Decode(messageID, headers))
	ctx = correlation.WithIdentity(ctx, correlation.DecodeIdentity(headers))

	messageType := headerValue(msg, HeaderMessageType)
	switch messageType {
	case TypeDeliveryCompleted:
		var event appevents.DeliveryCompleted
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("payload", err)
		}
		return c.handlers.Delivery.HandleDeliveryCompleted(ctx, event)

	case TypeDeliveryFailed:
		var event appevents.DeliveryFailed
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("payload", err)
		}
		return c.handlers.Delivery.HandleDeliveryFailed(ctx, event)

	case TypeDeliveryStarted:
		var event appevents.DeliveryStarted
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("payload", err)
		}
		return c.handlers.Delivery.HandleDeliveryStarted(ctx, event)

	case TypeParcelDeleted:
		var event appevents.ParcelDeleted
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("payload", err)
		}
		return c.handlers.ParcelDeleted.Handle(ctx, event)

	case TypeResourceReserved:
		var event appevents.ResourceReserved
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("payload", err)
		}
		return c.handlers.Resources.HandleResourceReserved(ctx, event)

	case TypeResourceReservationCanceled:
		var event appevents.ResourceReservationCanceled
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("payload", err)
		}
		return c.handlers.Resources.HandleResourceReservationCanceled(ctx, event)

	case TypeCustomerCreated:
		var event appevents.CustomerCreated
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("payload", err)
		}
		return c.handlers.CustomerCreated.Handle(ctx, event)

	default:
		if handled, err := c.dispatchCommand(ctx, messageType, msg.Value); handled {
			return err
		}
		// Unknown types are committed and skipped; this service is not the
		// only consumer of the topic.
		c.log.Debug("skipping unknown message type", zap.String("message_type", messageType))
		return nil
	}
}

func headersMap(msg kafka.Message) map[string][]byte {
	headers := make(map[string][]byte, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = h.Value
	}
	return headers
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
