package order

import (
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Event names as persisted in the outbox and matched by subscribers.
const (
	EventNameOrderPlaced    = "order.placed"
	EventNameOrderAccepted  = "order.accepted"
	EventNameOrderSent      = "order.sent"
	EventNameOrderDelivered = "order.delivered"
)

// DomainEvent is an immutable record of an order state transition.
// Events are raised by the aggregate at the moment of a transition, persisted
// to the outbox in the same transaction, and published to in-process
// subscribers after a successful commit. Subscribers must be idempotent on
// (order id, event name) because delivery is at-least-once.
type DomainEvent interface {
	// EventName returns the stable name of the event type.
	EventName() string
	// OrderID returns the id of the order the event belongs to.
	OrderID() kernel.UUID
	// OccurredAt returns the moment the transition happened.
	OccurredAt() time.Time
}

// baseEvent carries the fields shared by all order events.
type baseEvent struct {
	orderID    kernel.UUID
	occurredAt time.Time
}

func (e baseEvent) OrderID() kernel.UUID {
	return e.orderID
}

func (e baseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// OrderPlaced is raised when a customer places an order.
type OrderPlaced struct {
	baseEvent
}

func (OrderPlaced) EventName() string { return EventNameOrderPlaced }

// OrderAccepted is raised when a courier accepts an order.
// It carries the assigned courier so subscribers can notify the customer.
type OrderAccepted struct {
	baseEvent
	courierID kernel.UUID
}

func (OrderAccepted) EventName() string { return EventNameOrderAccepted }

// CourierID returns the courier assigned at acceptance time.
func (e OrderAccepted) CourierID() kernel.UUID {
	return e.courierID
}

// OrderSent is raised when an order leaves the kitchen.
type OrderSent struct {
	baseEvent
}

func (OrderSent) EventName() string { return EventNameOrderSent }

// OrderDelivered is raised when an order reaches the customer.
type OrderDelivered struct {
	baseEvent
}

func (OrderDelivered) EventName() string { return EventNameOrderDelivered }

func newOrderPlaced(orderID kernel.UUID) OrderPlaced {
	return OrderPlaced{baseEvent{orderID: orderID, occurredAt: time.Now()}}
}

func newOrderAccepted(orderID, courierID kernel.UUID) OrderAccepted {
	return OrderAccepted{
		baseEvent: baseEvent{orderID: orderID, occurredAt: time.Now()},
		courierID: courierID,
	}
}

func newOrderSent(orderID kernel.UUID) OrderSent {
	return OrderSent{baseEvent{orderID: orderID, occurredAt: time.Now()}}
}

func newOrderDelivered(orderID kernel.UUID) OrderDelivered {
	return OrderDelivered{baseEvent{orderID: orderID, occurredAt: time.Now()}}
}

// RestoreEvent reconstructs a domain event from persisted outbox data.
// Used by the outbox re-dispatch job to re-publish events that were committed
// but whose synchronous dispatch did not complete. The courier id is only
// meaningful for accepted events and may be nil otherwise.
func RestoreEvent(name string, orderID kernel.UUID, courierID *kernel.UUID, occurredAt time.Time) (DomainEvent, error) {
	base := baseEvent{orderID: orderID, occurredAt: occurredAt}

	switch name {
	case EventNameOrderPlaced:
		return OrderPlaced{base}, nil
	case EventNameOrderAccepted:
		if courierID == nil {
			return nil, errs.NewValueIsRequiredError("courier id")
		}
		return OrderAccepted{baseEvent: base, courierID: *courierID}, nil
	case EventNameOrderSent:
		return OrderSent{base}, nil
	case EventNameOrderDelivered:
		return OrderDelivered{base}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("event name",
			fmt.Errorf("%q is not a known order event", name))
	}
}
