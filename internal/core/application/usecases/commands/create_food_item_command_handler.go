package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/fooditem"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/results"
)

// CreateFoodItemCommandHandler handles menu additions. Admin-only operation;
// the transport layer enforces the role before the command reaches here.
type CreateFoodItemCommandHandler struct {
	uowFactory FoodItemUoWFactory
}

// NewCreateFoodItemCommandHandler creates a handler for menu additions.
// Requires a FoodItemUoWFactory for transactional persistence.
func NewCreateFoodItemCommandHandler(uowFactory FoodItemUoWFactory) CreateFoodItemCommandHandler {
	return CreateFoodItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu addition command.
// On success the Result carries the new item's ID. A duplicate identifier
// comes back as a failed Result.
func (h CreateFoodItemCommandHandler) Handle(
	ctx context.Context,
	cmd CreateFoodItemCommand,
) (results.Result[kernel.UUID], error) {
	if err := cmd.Validate(); err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	item, err := fooditem.NewFoodItem(cmd.FoodItemID(), cmd.Name(), cmd.Price())
	if err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.FoodItemRepository().Add(ctx, item); err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return results.FailureFromError[kernel.UUID](err), nil
		}
		return results.Result[kernel.UUID]{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	return results.Success(item.ID()), nil
}
