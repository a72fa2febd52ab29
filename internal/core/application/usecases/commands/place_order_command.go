package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrPlaceOrderItemIsNotConstructed = errors.New(
		"PlaceOrderItem must be created via NewPlaceOrderItem constructor",
	)
)

// PlaceOrderItem is a single requested menu item within a PlaceOrderCommand.
// It carries only the reference and the quantity; names and prices are
// snapshotted from the menu by the handler.
type PlaceOrderItem struct { //nolint:recvcheck //using for validation
	foodItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewPlaceOrderItem creates a requested item. Quantity must be positive.
func NewPlaceOrderItem(foodItemID kernel.UUID, quantity int) (PlaceOrderItem, error) {
	item := PlaceOrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := foodItemID.Validate(); err != nil {
		return PlaceOrderItem{}, err
	}
	if quantity <= 0 {
		return PlaceOrderItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	item.foodItemID = foodItemID
	item.quantity = quantity
	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i PlaceOrderItem) Validate() error {
	return i.guard.Validate(ErrPlaceOrderItemIsNotConstructed)
}

// FoodItemID returns the referenced menu item's identifier.
func (i PlaceOrderItem) FoodItemID() kernel.UUID {
	return i.foodItemID
}

// Quantity returns the requested quantity.
func (i PlaceOrderItem) Quantity() int {
	return i.quantity
}

// PlaceOrderCommand represents a customer's request to place a food order.
// Encapsulates the delivery location and the requested menu items.
//
// Example:
//
//	item, _ := NewPlaceOrderItem(foodItemID, 2)
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID,
//	    "Building 7", "412", "leave at the door", []PlaceOrderItem{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	location   kernel.Location
	items      []PlaceOrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates the identifiers, constructs the delivery location, and requires
// at least one properly constructed item.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	building string,
	roomNumber string,
	notes string,
	items []PlaceOrderItem,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	location, err := kernel.NewLocation(building, roomNumber, notes)
	if err != nil {
		return PlaceOrderCommand{}, err
	}

	if err = errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Location returns the delivery location.
func (c PlaceOrderCommand) Location() kernel.Location {
	return c.location
}

// Items returns a copy of the requested items.
func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	items := make([]PlaceOrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]PlaceOrderItem, len(items))
	copy(c.items, items)
	return nil
}
