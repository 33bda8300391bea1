package ports

import (
	"context"

	"orders/internal/core/domain/model/outbox"
)

// OutboxRepository defines the persistence contract for the outbox store.
//
// Add runs inside the unit of work's transaction, in the same atomic write as
// the aggregate state change. ClaimPending and Update are used by the
// dispatcher outside any handler transaction.
type OutboxRepository interface {
	// Add persists pending messages. A failure here must fail the whole unit
	// of work; callers surface it as an OutboxWriteFailureError.
	Add(ctx context.Context, messages ...*outbox.Message) error

	// ClaimPending atomically claims up to batchSize due pending messages for
	// the given owner and returns them ordered by creation time ascending.
	// A claim is a lease: rows claimed by another owner whose lease has not
	// expired are skipped, so concurrent dispatcher instances do not publish
	// the same message in the common case. Poisoned and processed messages
	// are never returned.
	ClaimPending(ctx context.Context, owner string, batchSize int) ([]*outbox.Message, error)

	// Update persists the dispatch outcome recorded on the message (processed
	// timestamp, attempt count, next attempt time, poisoned flag) and releases
	// the owner's claim.
	Update(ctx context.Context, message *outbox.Message) error
}
