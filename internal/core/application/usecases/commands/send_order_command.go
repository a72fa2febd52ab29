package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSendOrderCommandIsNotConstructed = errors.New(
	"SendOrderCommand must be created via NewSendOrderCommand constructor",
)

// SendOrderCommand represents a courier reporting that an accepted order has
// left for delivery. Only the assigned courier may send the order.
type SendOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendOrderCommand creates a command to mark an order as sent.
func NewSendOrderCommand(orderID kernel.UUID, courierID kernel.UUID) (SendOrderCommand, error) {
	cmd := SendOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		courierID.Validate(),
	); err != nil {
		return SendOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.courierID = courierID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOrderCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to send.
func (c SendOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the reporting courier.
func (c SendOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}
