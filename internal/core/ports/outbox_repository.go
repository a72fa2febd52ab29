package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OutboxMessage is a stored domain event awaiting publication.
type OutboxMessage struct {
	ID    kernel.UUID
	Event order.DomainEvent
}

// OutboxRepository defines the persistence contract for the transactional
// outbox. Events raised by an aggregate are stored in the same transaction
// as the aggregate change, then published after commit. A message stays in
// the outbox until publication is confirmed, which gives at-least-once
// delivery: a crash between commit and publish is repaired by the
// re-dispatch job.
type OutboxRepository interface {
	// Add stores the events as unpublished messages in the current
	// transaction.
	Add(ctx context.Context, events []order.DomainEvent) error

	// GetUnpublished retrieves up to limit unpublished messages, oldest
	// first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records that the messages with the given identifiers
	// have been delivered to all subscribers.
	MarkPublished(ctx context.Context, ids []kernel.UUID) error
}
