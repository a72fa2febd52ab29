// Package fooditemrepo implements the repository pattern for the food item
// aggregate, mapping menu entries to their relational representation.
package fooditemrepo

import (
	"fooddelivery/internal/core/domain/model/fooditem"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FoodItemDTO represents the database structure for persisting menu entries.
type FoodItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"index"`
	PriceCents int64
}

// TableName specifies the database table name for food item entities.
func (FoodItemDTO) TableName() string {
	return "food_items"
}

// fromDomain converts a food item aggregate to its database representation.
func fromDomain(item *fooditem.FoodItem) FoodItemDTO {
	return FoodItemDTO{
		ID:         item.ID().Bytes(),
		Name:       item.Name(),
		PriceCents: item.Price().Cents(),
	}
}

// toDomain converts a database DTO to a food item aggregate.
func toDomain(dto FoodItemDTO) (*fooditem.FoodItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return fooditem.RestoreFoodItem(id, dto.Name, price)
}
