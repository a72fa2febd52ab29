package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/results"
)

// DeleteFoodItemCommandHandler handles menu removals. Deleting an item that
// does not exist is a failed Result, not a silent success: repeating the same
// delete must fail the second time.
type DeleteFoodItemCommandHandler struct {
	uowFactory FoodItemUoWFactory
}

// NewDeleteFoodItemCommandHandler creates a handler for menu removals.
// Requires a FoodItemUoWFactory for transactional persistence.
func NewDeleteFoodItemCommandHandler(uowFactory FoodItemUoWFactory) DeleteFoodItemCommandHandler {
	return DeleteFoodItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu removal command.
// On success the Result carries the removed item's ID.
func (h DeleteFoodItemCommandHandler) Handle(
	ctx context.Context,
	cmd DeleteFoodItemCommand,
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

	if err := uow.FoodItemRepository().Delete(ctx, cmd.FoodItemID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return results.FailureFromError[kernel.UUID](err), nil
		}
		return results.Result[kernel.UUID]{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	return results.Success(cmd.FoodItemID()), nil
}
