package messaging

import (
	"context"
	"time"

	"orders/internal/core/ports"

	"go.uber.org/zap"
)

// Dispatcher drains the outbox store: it claims batches of pending messages,
// publishes them through the message broker, and records the outcome.
// Delivery is at-least-once: a message is marked processed only after the
// broker confirmed it, so a crash between publish and mark leads to a
// duplicate, never to a loss. Consumers are expected to be idempotent.
//
// The dispatcher runs decoupled from request handling; handlers never wait
// for publication. Multiple instances may run concurrently: the claim lease
// in the outbox repository keeps them off each other's messages in the
// common case.
type Dispatcher struct {
	outboxRepo  ports.OutboxRepository
	broker      ports.MessageBroker
	owner       string
	batchSize   int
	maxAttempts int
	log         *zap.Logger
}

// NewDispatcher creates a Dispatcher. owner identifies this instance in the
// claim lease; batchSize bounds back-pressure per cycle; maxAttempts is the
// retry budget after which a message is poisoned.
func NewDispatcher(
	outboxRepo ports.OutboxRepository,
	broker ports.MessageBroker,
	owner string,
	batchSize int,
	maxAttempts int,
	log *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		outboxRepo:  outboxRepo,
		broker:      broker,
		owner:       owner,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		log:         log,
	}
}

// ProcessBatch runs one dispatch cycle: claim, publish in creation order,
// record outcomes. Every message ends the cycle either marked processed or
// left claimable for a later cycle, never half-marked.
func (d *Dispatcher) ProcessBatch(ctx context.Context) error {
	messages, err := d.outboxRepo.ClaimPending(ctx, d.owner, d.batchSize)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		if ctx.Err() != nil {
			// Cycle canceled: unpublished messages keep their claim until the
			// lease expires and are retried by a later cycle.
			return ctx.Err()
		}

		now := time.Now().UTC()
		if err := d.broker.Publish(ctx, msg); err != nil {
			msg.RecordFailure(now, d.maxAttempts)
			if msg.IsPoisoned() {
				d.log.Error("outbox message poisoned, operator intervention required",
					zap.String("message_id", msg.ID().String()),
					zap.String("message_type", msg.Type()),
					zap.Int("attempts", msg.AttemptCount()),
					zap.Error(err),
				)
			} else {
				d.log.Warn("publish failed, will retry",
					zap.String("message_id", msg.ID().String()),
					zap.String("message_type", msg.Type()),
					zap.Int("attempts", msg.AttemptCount()),
					zap.Time("next_attempt_at", msg.NextAttemptAt()),
					zap.Error(err),
				)
			}
			if err := d.outboxRepo.Update(ctx, msg); err != nil {
				d.log.Error("failed to record publish failure",
					zap.String("message_id", msg.ID().String()), zap.Error(err))
			}
			continue
		}

		msg.MarkProcessed(now)
		if err := d.outboxRepo.Update(ctx, msg); err != nil {
			// The message will be claimed and published again after the lease
			// expires; accepted under at-least-once delivery.
			d.log.Error("published but failed to mark processed",
				zap.String("message_id", msg.ID().String()), zap.Error(err))
		}
	}

	return nil
}
