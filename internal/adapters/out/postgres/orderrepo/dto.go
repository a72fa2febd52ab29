// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines live in their own table and are loaded together with the order; the
// version column is the optimistic concurrency token checked on every update.
type OrderDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID   `gorm:"type:uuid;index"`
	CourierID        *uuid.UUID  `gorm:"type:uuid;index"`
	Location         LocationDTO `gorm:"embedded"`
	Lines            []OrderLineDTO
	DeliveryFeeCents int64
	Status           int `gorm:"index"`
	PlacedAt         time.Time
	Version          int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents the embedded delivery location within the order table.
type LocationDTO struct {
	Building   string
	RoomNumber string
	Notes      string
}

// OrderLineDTO represents a single order line row. Lines are immutable after
// placement: they are inserted with the order and never updated.
type OrderLineDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	FoodItemID     uuid.UUID `gorm:"type:uuid"`
	Name           string
	Quantity       int
	UnitPriceCents int64
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:             line.ID().Bytes(),
			OrderID:        aggregate.ID().Bytes(),
			FoodItemID:     line.FoodItemID().Bytes(),
			Name:           line.Name(),
			Quantity:       line.Quantity(),
			UnitPriceCents: line.UnitPrice().Cents(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		CourierID:  courierID,
		Location: LocationDTO{
			Building:   aggregate.Location().Building(),
			RoomNumber: aggregate.Location().RoomNumber(),
			Notes:      aggregate.Location().Notes(),
		},
		Lines:            lines,
		DeliveryFeeCents: aggregate.DeliveryFee().Cents(),
		Status:           int(aggregate.Status()),
		PlacedAt:         aggregate.PlacedAt(),
		Version:          aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines, status, and courier
// assignment using RestoreOrder, which re-validates every invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	loc, err := kernel.NewLocation(dto.Location.Building, dto.Location.RoomNumber, dto.Location.Notes)
	if err != nil {
		return nil, err
	}

	fee, err := kernel.NewMoneyFromCents(dto.DeliveryFeeCents)
	if err != nil {
		return nil, err
	}

	lines := make([]order.OrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id, customerID, loc, lines, order.Status(dto.Status), courierID, fee, dto.PlacedAt, dto.Version)
}

func lineToDomain(dto OrderLineDTO) (order.OrderLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.OrderLine{}, err
	}

	foodItemID, err := kernel.UUIDFromBytes(dto.FoodItemID[:])
	if err != nil {
		return order.OrderLine{}, err
	}

	unitPrice, err := kernel.NewMoneyFromCents(dto.UnitPriceCents)
	if err != nil {
		return order.OrderLine{}, err
	}

	return order.NewOrderLine(id, foodItemID, dto.Name, dto.Quantity, unitPrice)
}
