// Package outboxrepo implements the transactional outbox table. Every order
// event is stored here in the same transaction as the aggregate change that
// raised it, then marked published once all subscribers have seen it.
package outboxrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxMessageDTO represents a stored domain event awaiting publication.
// PublishedAt is null until every subscriber has been notified; the
// re-dispatch job picks up rows where it is still null.
type OutboxMessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventName   string
	OrderID     uuid.UUID  `gorm:"type:uuid;index"`
	CourierID   *uuid.UUID `gorm:"type:uuid"`
	OccurredAt  time.Time  `gorm:"index"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

// fromEvent converts a domain event to a fresh unpublished outbox row.
func fromEvent(event order.DomainEvent) OutboxMessageDTO {
	dto := OutboxMessageDTO{
		ID:         uuid.New(),
		EventName:  event.EventName(),
		OrderID:    event.OrderID().Bytes(),
		OccurredAt: event.OccurredAt(),
	}

	if accepted, ok := event.(order.OrderAccepted); ok {
		raw := accepted.CourierID().Bytes()
		dto.CourierID = &raw
	}

	return dto
}

// toMessage converts a stored row back to an outbox message with its event.
func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return ports.OutboxMessage{}, courierErr
		}
		courierID = &cID
	}

	event, err := order.RestoreEvent(dto.EventName, orderID, courierID, dto.OccurredAt)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{ID: id, Event: event}, nil
}
