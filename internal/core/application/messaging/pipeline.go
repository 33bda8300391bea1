package messaging

import (
	"context"
	"encoding/json"
	"time"

	"orders/internal/core/domain/events"
	"orders/internal/core/domain/model/outbox"
	"orders/internal/core/ports"
	"orders/internal/pkg/correlation"
	"orders/internal/pkg/errs"

	"go.uber.org/zap"
)

// Action is the business part of one command or event handler: it mutates
// aggregates through the unit of work's repositories and returns an error to
// abort the whole transaction.
type Action func(ctx context.Context, uow ports.UnitOfWork) error

// Pipeline wraps every handler invocation with outbox capture, making
// "aggregate state changed" and "events recorded for publication" a single
// atomic unit without the business handler knowing about outboxing.
//
// Execute runs these steps inside one transaction:
//  1. invoke the action (business logic mutates aggregates via repositories);
//  2. collect pending domain events from every tracked aggregate;
//  3. map them to integration events;
//  4. persist each as a pending outbox message with headers derived from the
//     current correlation context;
//  5. commit, then clear the aggregates' pending events.
//
// If the action fails, nothing is committed. If the outbox write fails after
// the action succeeded, the whole transaction, including the aggregate's
// state change, rolls back, and the error is reported as an
// OutboxWriteFailureError so the transport layer redelivers the inbound
// message.
type Pipeline struct {
	uowFactory ports.UnitOfWorkFactory
	mapper     *EventMapper
	log        *zap.Logger
}

// NewPipeline creates a Pipeline.
func NewPipeline(uowFactory ports.UnitOfWorkFactory, mapper *EventMapper, log *zap.Logger) *Pipeline {
	return &Pipeline{
		uowFactory: uowFactory,
		mapper:     mapper,
		log:        log,
	}
}

// Execute runs one action under outbox capture.
func (p *Pipeline) Execute(ctx context.Context, action Action) error {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := action(ctx, uow); err != nil {
		return err
	}

	sources := uow.TrackedEventSources()
	messages, err := p.captureMessages(ctx, sources)
	if err != nil {
		return err
	}

	if len(messages) > 0 {
		if err := uow.OutboxRepository().Add(ctx, messages...); err != nil {
			return errs.NewOutboxWriteFailureError(err)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	// Pending events are consumed exactly once: cleared only after the
	// transaction that captured them committed.
	for _, source := range sources {
		source.ClearEvents()
	}

	if len(messages) > 0 {
		p.log.Debug("captured outbox messages",
			zap.Int("count", len(messages)),
			zap.String("correlation_id", correlation.FromContext(ctx).CorrelationID),
		)
	}
	return nil
}

// captureMessages maps the pending events of every tracked aggregate to
// pending outbox messages, preserving the order events were recorded in.
func (p *Pipeline) captureMessages(ctx context.Context, sources []events.Source) ([]*outbox.Message, error) {
	corr := correlation.FromContext(ctx)
	now := time.Now().UTC()

	var messages []*outbox.Message
	for _, source := range sources {
		for _, integration := range p.mapper.MapAll(source.PendingEvents()) {
			payload, err := json.Marshal(integration)
			if err != nil {
				return nil, errs.NewOutboxWriteFailureError(err)
			}

			msg, err := outbox.NewMessage(integration.Name(), integration.Aggregate(), payload, corr, now)
			if err != nil {
				return nil, errs.NewOutboxWriteFailureError(err)
			}
			messages = append(messages, msg)
		}
	}
	return messages, nil
}
