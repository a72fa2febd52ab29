package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// EventPublisher delivers domain events to their subscribers.
//
// Publish is called after the transaction that stored the event has
// committed. Implementations must tolerate duplicate delivery: the outbox
// re-dispatch job may hand the same event to Publish more than once.
type EventPublisher interface {
	Publish(ctx context.Context, event order.DomainEvent) error
}
