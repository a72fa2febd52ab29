package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteFoodItemCommandIsNotConstructed = errors.New(
	"DeleteFoodItemCommand must be created via NewDeleteFoodItemCommand constructor",
)

// DeleteFoodItemCommand represents an admin's request to remove a menu entry.
// Already placed orders are unaffected: they carry name and price snapshots.
type DeleteFoodItemCommand struct { //nolint:recvcheck //using for validation
	foodItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteFoodItemCommand creates a command to remove a food item from the menu.
func NewDeleteFoodItemCommand(foodItemID kernel.UUID) (DeleteFoodItemCommand, error) {
	cmd := DeleteFoodItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := foodItemID.Validate(); err != nil {
		return DeleteFoodItemCommand{}, err
	}

	cmd.foodItemID = foodItemID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteFoodItemCommandIsNotConstructed)
}

// FoodItemID returns the identifier of the menu entry to remove.
func (c DeleteFoodItemCommand) FoodItemID() kernel.UUID {
	return c.foodItemID
}
