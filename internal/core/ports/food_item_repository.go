package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/fooditem"
	"fooddelivery/internal/core/domain/model/kernel"
)

// FoodItemRepository defines the persistence contract for food item aggregates.
type FoodItemRepository interface {
	// Add persists a new food item to storage.
	Add(ctx context.Context, aggregate *fooditem.FoodItem) error

	// Update persists changes to an existing food item.
	Update(ctx context.Context, aggregate *fooditem.FoodItem) error

	// Get retrieves a food item by its unique identifier.
	// Returns an ObjectNotFoundError when no such item exists.
	Get(ctx context.Context, id kernel.UUID) (*fooditem.FoodItem, error)

	// GetByIDs retrieves the food items with the given identifiers.
	// Missing identifiers are simply absent from the result; the caller
	// decides whether that is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*fooditem.FoodItem, error)

	// Delete removes a food item from the menu.
	// Returns an ObjectNotFoundError when no such item exists, so a repeated
	// delete of the same item fails rather than silently succeeding.
	Delete(ctx context.Context, id kernel.UUID) error
}
