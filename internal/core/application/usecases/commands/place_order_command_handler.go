package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/fooditem"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/results"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Snapshots the menu name and price of every requested item, computes the
// delivery fee, and creates the order in Submitted status. The OrderPlaced
// event is stored in the outbox within the same transaction.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // infrastructure failure
//	}
//	if orderID, ok := result.Value(); ok {
//	    fmt.Printf("Order %s placed", orderID)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	fees       services.FeeCalculator
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a PlaceOrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		fees:       services.NewFeeCalculator(),
	}
}

// Handle processes the order placement command.
// Returns a failed Result when a requested item is not on the menu; the order
// is then not placed at all. On success the Result carries the new order's ID.
func (h PlaceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceOrderCommand,
) (results.Result[kernel.UUID], error) {
	if err := cmd.Validate(); err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ids := make([]kernel.UUID, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		ids = append(ids, item.FoodItemID())
	}

	menuItems, err := uow.FoodItemRepository().GetByIDs(ctx, ids)
	if err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	menu := make(map[kernel.UUID]*fooditem.FoodItem, len(menuItems))
	for _, item := range menuItems {
		menu[item.ID()] = item
	}

	lines := make([]order.OrderLine, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		menuItem, ok := menu[item.FoodItemID()]
		if !ok {
			return results.Failure[kernel.UUID](
				fmt.Sprintf("food item %s is not on the menu", item.FoodItemID())), nil
		}

		line, err := order.NewOrderLine(
			kernel.NewUUID(), menuItem.ID(), menuItem.Name(), item.Quantity(), menuItem.Price())
		if err != nil {
			return results.Result[kernel.UUID]{}, err
		}

		lines = append(lines, line)
	}

	fee, err := h.fees.FeeFor(lines)
	if err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Location(), lines, fee)
	if err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	if err = uow.OutboxRepository().Add(ctx, newOrder.Events()); err != nil {
		return results.Result[kernel.UUID]{}, err
	}
	newOrder.ClearEvents()

	if err = uow.Commit(ctx); err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	return results.Success(newOrder.ID()), nil
}
