// Package fooditem provides the FoodItem aggregate: a priced menu entry
// managed by admins. Orders reference food items by id but snapshot name and
// price at placement time, so menu changes never rewrite history.
package fooditem

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrFoodItemIsNotConstructed is returned when a FoodItem instance was not
// created through NewFoodItem or RestoreFoodItem.
var ErrFoodItemIsNotConstructed = errors.New("FoodItem must be created via NewFoodItem or RestoreFoodItem constructor")

// FoodItem is a menu entry with a name and a non-negative price.
type FoodItem struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	isConstructed bool
}

// NewFoodItem creates a menu entry. The name must be non-empty; the price is
// a Money value and therefore already non-negative.
func NewFoodItem(id kernel.UUID, name string, price kernel.Money) (*FoodItem, error) {
	item := &FoodItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
	); err != nil {
		return nil, err
	}

	item.price = price
	return item, nil
}

// RestoreFoodItem reconstructs a FoodItem from persistence.
func RestoreFoodItem(id kernel.UUID, name string, price kernel.Money) (*FoodItem, error) {
	return NewFoodItem(id, name, price)
}

// Validate ensures the FoodItem instance was properly constructed.
func (f *FoodItem) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFoodItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two food items by their unique identifiers.
func (f *FoodItem) IsEqual(other *FoodItem) bool {
	return other != nil && f.id.IsEqual(other.id)
}

// ID returns the food item's unique identifier.
func (f *FoodItem) ID() kernel.UUID {
	return f.id
}

// Name returns the menu name.
func (f *FoodItem) Name() string {
	return f.name
}

// Price returns the current menu price.
func (f *FoodItem) Price() kernel.Money {
	return f.price
}

// Rename changes the menu name. Already placed orders keep their snapshots.
func (f *FoodItem) Rename(name string) error {
	return f.setName(name)
}

// ChangePrice changes the menu price. Already placed orders keep their snapshots.
func (f *FoodItem) ChangePrice(price kernel.Money) {
	f.price = price
}

func (f *FoodItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *FoodItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("food item name")
	}
	f.name = name
	return nil
}
