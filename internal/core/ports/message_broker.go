package ports

import (
	"context"

	"orders/internal/core/domain/model/outbox"
)

// MessageBroker abstracts the publish side of the message transport.
//
// Publish sends one message to the destination configured for its type and
// returns an error when delivery could not be confirmed; it never drops a
// message silently. Publish calls issued sequentially by one dispatcher cycle
// are delivered in that sequence within one connection; no ordering is
// promised across destinations.
type MessageBroker interface {
	Publish(ctx context.Context, message *outbox.Message) error
}
