// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database with raw SQL; they never modify state and never raise events.
package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the current menu: every food item with its name and
// price. Available to any signed-in user.
//
// Example:
//
//	query := NewGetMenuQuery()
//	handler := NewGetMenuQueryHandler(db)
//
//	menu, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get menu: %w", err)
//	}
//	for _, item := range menu {
//	    fmt.Printf("%s %s\n", item.Name, item.Price)
//	}
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to retrieve the menu.
// This is a parameterless query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuQueryIsNotConstructed if validation fails.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse represents a single menu entry.
type GetMenuQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Money
}
