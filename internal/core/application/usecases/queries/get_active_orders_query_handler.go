package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves undelivered orders from the database.
// The order total is computed in SQL from the line snapshots plus the
// delivery fee, so the projection never loads full aggregates.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all undelivered orders.
// Results are sorted oldest first so couriers see the longest-waiting orders
// at the top.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.courier_id,
			o.building,
			o.room_number,
			o.notes,
			o.placed_at,
			o.delivery_fee_cents + COALESCE(SUM(l.quantity * l.unit_price_cents), 0) AS total_cents
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.status != ?
		GROUP BY o.id, o.status, o.courier_id, o.building, o.room_number, o.notes,
			o.placed_at, o.delivery_fee_cents
		ORDER BY o.placed_at, o.id
	`, order.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var status int
		var courierID uuid.NullUUID
		var building, roomNumber, notes string
		var placedAt time.Time
		var totalCents int64

		err = rows.Scan(
			&id,
			&status,
			&courierID,
			&building,
			&roomNumber,
			&notes,
			&placedAt,
			&totalCents,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		location, locErr := kernel.NewLocation(building, roomNumber, notes)
		if locErr != nil {
			return nil, locErr
		}

		total, totalErr := kernel.NewMoneyFromCents(totalCents)
		if totalErr != nil {
			return nil, totalErr
		}

		resp := GetActiveOrdersQueryResponse{
			ID:       orderID,
			Status:   order.Status(status),
			Location: location,
			PlacedAt: placedAt,
			Total:    total,
		}

		if courierID.Valid {
			cID, cErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if cErr != nil {
				return nil, cErr
			}
			resp.CourierID = &cID
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
