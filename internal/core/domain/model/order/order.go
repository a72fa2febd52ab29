package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a food order in the system. It is the aggregate root that
// manages the order lifecycle from placement through courier delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer
//   - Must have a valid delivery location
//   - Must contain at least one order line; lines are immutable after placement
//   - A courier is assigned exactly once, at acceptance
//   - Status transitions are forward-only: Submitted -> Accepted -> Sent -> Delivered
//   - Can only be created through NewOrder or RestoreOrder
//
// Every successful state transition raises exactly one domain event. Raised
// events accumulate on the aggregate until drained with Events/ClearEvents by
// the command handler after a successful commit.
//
// The version field supports the store's optimistic concurrency check: two
// conflicting writes to the same order cannot both succeed.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order
	customerID kernel.UUID

	// courierID is the assigned courier's ID (nil until accepted)
	courierID *kernel.UUID

	// location is the delivery destination, owned by the order
	location kernel.Location

	// lines are the ordered items with price snapshots (at least one)
	lines []OrderLine

	// deliveryFee is the fee computed at placement time
	deliveryFee kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// placedAt is the moment the order was placed
	placedAt time.Time

	// version is the optimistic concurrency token checked at save time
	version int

	// events are the domain events raised since the last ClearEvents
	events []DomainEvent

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Submitted status and raises OrderPlaced.
// This is the only way to place a valid order, ensuring all business
// invariants hold: valid ids and location, at least one constructed line.
//
// Example:
//
//	line, _ := order.NewOrderLine(kernel.NewUUID(), foodItemID, "Margherita", 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, location, []order.OrderLine{line}, fee)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	location kernel.Location,
	lines []OrderLine,
	deliveryFee kernel.Money,
) (*Order, error) {
	o := &Order{
		status:        Submitted,
		placedAt:      time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLocation(location),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.deliveryFee = deliveryFee
	o.raise(newOrderPlaced(o.id))
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without raising events.
// It re-validates all invariants, including status/courier consistency, so
// corrupt rows never become live aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	location kernel.Location,
	lines []OrderLine,
	status Status,
	courierID *kernel.UUID,
	deliveryFee kernel.Money,
	placedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		placedAt:      placedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLocation(location),
		o.setLines(lines),
		status.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}

	if version < 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	o.status = status
	o.deliveryFee = deliveryFee
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the id of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Courier returns the assigned courier's ID, or nil before acceptance.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Location returns the delivery location for the order.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []OrderLine {
	lines := make([]OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// DeliveryFee returns the fee computed at placement time.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns the moment the order was placed.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Version returns the optimistic concurrency token loaded from the store.
func (o *Order) Version() int {
	return o.version
}

// ItemsTotal returns the sum of all line totals, excluding the delivery fee.
func (o *Order) ItemsTotal() kernel.Money {
	var total kernel.Money
	for _, line := range o.lines {
		total = total.Add(line.Total())
	}
	return total
}

// Total returns the items total plus the delivery fee.
func (o *Order) Total() kernel.Money {
	return o.ItemsTotal().Add(o.deliveryFee)
}

// Accept assigns a courier and transitions the order to Accepted.
//
// Business rules:
//   - The courier ID must be valid
//   - The order must currently be Submitted
//
// On success the order's status becomes Accepted, Courier() returns the
// assigned courier, and an OrderAccepted event is raised. Any other starting
// status returns an InvalidTransitionError and leaves the order unchanged.
func (o *Order) Accept(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.raise(newOrderAccepted(o.id, courierID))
	return nil
}

// Send transitions the order to Sent and raises OrderSent.
// The order must currently be Accepted; any other status returns an
// InvalidTransitionError and leaves the order unchanged.
func (o *Order) Send() error {
	newStatus, err := o.status.Send()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.raise(newOrderSent(o.id))
	return nil
}

// Deliver transitions the order to Delivered and raises OrderDelivered.
// The order must currently be Sent. Delivered is terminal: no further
// transitions are possible afterwards.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.raise(newOrderDelivered(o.id))
	return nil
}

// Events returns a copy of the domain events raised since the last ClearEvents,
// in the order they were raised.
func (o *Order) Events() []DomainEvent {
	events := make([]DomainEvent, len(o.events))
	copy(events, o.events)
	return events
}

// ClearEvents drops the accumulated events. Called by command handlers after
// the events have been persisted to the outbox and published.
func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) raise(event DomainEvent) {
	o.events = append(o.events, event)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]OrderLine, len(lines))
	copy(o.lines, lines)
	return nil
}
