package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a courier reporting that a sent order has
// reached the customer. Only the assigned courier may deliver the order.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to mark an order as delivered.
func NewDeliverOrderCommand(orderID kernel.UUID, courierID kernel.UUID) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		courierID.Validate(),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.courierID = courierID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the reporting courier.
func (c DeliverOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}
