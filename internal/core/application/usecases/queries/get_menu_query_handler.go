package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler reads the menu from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query to retrieve all menu entries.
// Results are sorted by name for stable menu rendering.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menu := make([]GetMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price_cents
		FROM food_items
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		var priceCents int64

		if err = rows.Scan(&id, &name, &priceCents); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.NewMoneyFromCents(priceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		menu = append(menu, GetMenuQueryResponse{
			ID:    itemID,
			Name:  name,
			Price: price,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menu, nil
}
