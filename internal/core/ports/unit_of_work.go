package ports

import (
	"context"

	"orders/internal/core/domain/events"
	"orders/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each inbound
// message. This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one business transaction boundary: the aggregate
// state change and the outbox capture commit or roll back together.
// It provides transaction control and tracks the aggregates touched during
// the transaction so the capture pipeline can drain their pending events.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// CustomerRepository returns a CustomerRepository bound to the current
	// transaction.
	CustomerRepository() CustomerRepository

	// OutboxRepository returns an OutboxRepository bound to the current
	// transaction, so outbox rows share the aggregate's atomic write.
	OutboxRepository() OutboxRepository

	// TrackAggregate registers an aggregate modified within this unit of
	// work. Repositories call it on Add/Update.
	TrackAggregate(id kernel.UUID, aggregate any)

	// TrackedEventSources returns the distinct tracked aggregates that carry
	// pending domain events, in tracking order.
	TrackedEventSources() []events.Source
}
