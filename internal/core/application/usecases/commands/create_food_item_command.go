package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateFoodItemCommandIsNotConstructed = errors.New(
	"CreateFoodItemCommand must be created via NewCreateFoodItemCommand constructor",
)

// CreateFoodItemCommand represents an admin's request to add a menu entry.
type CreateFoodItemCommand struct { //nolint:recvcheck //using for validation
	foodItemID kernel.UUID
	name       string
	price      kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateFoodItemCommand creates a command to add a food item to the menu.
// The name must be non-empty and the price non-negative, in cents.
func NewCreateFoodItemCommand(
	foodItemID kernel.UUID,
	name string,
	priceCents int64,
) (CreateFoodItemCommand, error) {
	cmd := CreateFoodItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	price, err := kernel.NewMoneyFromCents(priceCents)
	if err != nil {
		return CreateFoodItemCommand{}, err
	}

	if err = errors.Join(
		cmd.setFoodItemID(foodItemID),
		cmd.setName(name),
	); err != nil {
		return CreateFoodItemCommand{}, err
	}

	cmd.price = price
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateFoodItemCommandIsNotConstructed)
}

// FoodItemID returns the unique identifier for the new menu entry.
func (c CreateFoodItemCommand) FoodItemID() kernel.UUID {
	return c.foodItemID
}

// Name returns the menu name.
func (c CreateFoodItemCommand) Name() string {
	return c.name
}

// Price returns the menu price.
func (c CreateFoodItemCommand) Price() kernel.Money {
	return c.price
}

func (c *CreateFoodItemCommand) setFoodItemID(foodItemID kernel.UUID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	c.foodItemID = foodItemID
	return nil
}

func (c *CreateFoodItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("food item name")
	}

	c.name = name
	return nil
}
