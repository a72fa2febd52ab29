package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrOrderLineIsNotConstructed is returned when an OrderLine was not created
// through the NewOrderLine constructor.
var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")

// OrderLine is an immutable line item within an order.
//
// The name and unit price are snapshots taken from the food item at order
// time: later changes to the menu never affect an already placed order.
// Lines are created together with their order and never modified afterwards.
type OrderLine struct { //nolint:recvcheck //using for validation
	id         kernel.UUID
	foodItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderLine creates an order line for the given food item snapshot.
// Quantity must be greater than zero; the name must be non-empty.
func NewOrderLine(
	id kernel.UUID,
	foodItemID kernel.UUID,
	name string,
	quantity int,
	unitPrice kernel.Money,
) (OrderLine, error) {
	line := OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setFoodItemID(foodItemID),
		line.setName(name),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	line.unitPrice = unitPrice
	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ID returns the line's unique identifier.
func (l OrderLine) ID() kernel.UUID {
	return l.id
}

// FoodItemID returns the referenced food item's identifier.
func (l OrderLine) FoodItemID() kernel.UUID {
	return l.foodItemID
}

// Name returns the food item name as it was at order time.
func (l OrderLine) Name() string {
	return l.name
}

// Quantity returns the ordered quantity.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-unit price snapshot.
func (l OrderLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns quantity times unit price.
func (l OrderLine) Total() kernel.Money {
	// quantity is validated positive at construction
	total, _ := l.unitPrice.MulQty(l.quantity)
	return total
}

func (l *OrderLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *OrderLine) setFoodItemID(foodItemID kernel.UUID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}
	l.foodItemID = foodItemID
	return nil
}

func (l *OrderLine) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("order line name")
	}
	l.name = name
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
