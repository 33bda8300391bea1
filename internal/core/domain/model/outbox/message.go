// Package outbox implements the durable record of integration events awaiting
// publication. Messages are created in the same transaction as the aggregate
// state change that produced them and are mutated only by the dispatcher:
// mark processed on publish success, record a failed attempt otherwise.
// Messages are never deleted by the service; they are retained for audit.
package outbox

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/correlation"
	"orders/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned when a Message was not created via
// NewMessage or RestoreMessage.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage or RestoreMessage")

const (
	// backoffBase is the delay before the first retry; each further failed
	// attempt doubles it.
	backoffBase = time.Second
	// backoffCap bounds the exponential backoff delay.
	backoffCap = 5 * time.Minute
)

// Message is one integration event captured for publication.
type Message struct {
	id          kernel.UUID
	messageType string
	aggregateID kernel.UUID
	payload     []byte
	headers     correlation.Context

	createdAt     time.Time
	processedAt   *time.Time
	attemptCount  int
	nextAttemptAt time.Time
	poisoned      bool

	isConstructed bool
}

// NewMessage creates a pending Message for the given integration event
// payload. The stored headers are the outbound headers: the supplied
// correlation context with the causation id set to this message's own id.
func NewMessage(
	messageType string,
	aggregateID kernel.UUID,
	payload []byte,
	ctx correlation.Context,
	now time.Time,
) (*Message, error) {
	if messageType == "" {
		return nil, errs.NewValueIsRequiredError("message type")
	}
	if err := aggregateID.Validate(); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, errs.NewValueIsRequiredError("payload")
	}

	id := kernel.NewUUID()
	return &Message{
		id:            id,
		messageType:   messageType,
		aggregateID:   aggregateID,
		payload:       payload,
		headers:       ctx.ForOutbound(id.String()),
		createdAt:     now,
		nextAttemptAt: now,
		isConstructed: true,
	}, nil
}

// RestoreMessage reconstructs a Message from persistence.
func RestoreMessage(
	id kernel.UUID,
	messageType string,
	aggregateID kernel.UUID,
	payload []byte,
	headers correlation.Context,
	createdAt time.Time,
	processedAt *time.Time,
	attemptCount int,
	nextAttemptAt time.Time,
	poisoned bool,
) (*Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if messageType == "" {
		return nil, errs.NewValueIsRequiredError("message type")
	}

	return &Message{
		id:            id,
		messageType:   messageType,
		aggregateID:   aggregateID,
		payload:       payload,
		headers:       headers,
		createdAt:     createdAt,
		processedAt:   processedAt,
		attemptCount:  attemptCount,
		nextAttemptAt: nextAttemptAt,
		poisoned:      poisoned,
		isConstructed: true,
	}, nil
}

// Validate ensures the Message was created through a factory function.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message's unique identifier.
func (m *Message) ID() kernel.UUID { return m.id }

// Type returns the integration-event contract name, e.g. "order_completed".
func (m *Message) Type() string { return m.messageType }

// AggregateID returns the id of the aggregate that produced the event.
// Brokers use it as the partition key so events of one aggregate stay ordered.
func (m *Message) AggregateID() kernel.UUID { return m.aggregateID }

// Payload returns the serialized integration event.
func (m *Message) Payload() []byte { return m.payload }

// Headers returns the outbound correlation headers stored with the message.
func (m *Message) Headers() correlation.Context { return m.headers }

// CreatedAt returns the capture time. Dispatch order follows it.
func (m *Message) CreatedAt() time.Time { return m.createdAt }

// ProcessedAt returns the publish time, or nil while the message is pending.
func (m *Message) ProcessedAt() *time.Time { return m.processedAt }

// AttemptCount returns the number of failed publish attempts so far.
func (m *Message) AttemptCount() int { return m.attemptCount }

// NextAttemptAt returns the earliest time the dispatcher may retry.
func (m *Message) NextAttemptAt() time.Time { return m.nextAttemptAt }

// IsPoisoned reports whether the message exceeded its retry budget and now
// requires operator intervention. Poisoned messages are excluded from
// dispatch but never deleted.
func (m *Message) IsPoisoned() bool { return m.poisoned }

// IsPending reports whether the message still awaits publication.
func (m *Message) IsPending() bool { return m.processedAt == nil && !m.poisoned }

// MarkProcessed records a successful publication.
func (m *Message) MarkProcessed(now time.Time) {
	m.processedAt = &now
}

// RecordFailure records a failed publish attempt: the attempt counter goes
// up and the next attempt is pushed out by an exponential backoff capped at
// backoffCap. Once the attempt count exceeds maxAttempts the message is
// poisoned instead of rescheduled.
func (m *Message) RecordFailure(now time.Time, maxAttempts int) {
	m.attemptCount++
	if m.attemptCount >= maxAttempts {
		m.poisoned = true
		return
	}
	m.nextAttemptAt = now.Add(BackoffDelay(m.attemptCount))
}

// BackoffDelay returns the retry delay after the given number of failed
// attempts: base * 2^(attempts-1), capped.
func BackoffDelay(attempts int) time.Duration {
	if attempts < 1 {
		return 0
	}
	delay := backoffBase
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= backoffCap {
			return backoffCap
		}
	}
	if delay > backoffCap {
		return backoffCap
	}
	return delay
}
