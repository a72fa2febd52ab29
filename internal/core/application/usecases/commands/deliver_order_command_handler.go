package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/results"
)

// DeliverOrderCommandHandler handles the Sent -> Delivered transition, the
// terminal step of the order lifecycle. Verifies the reporting courier is the
// order's assigned courier before transitioning.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for delivery confirmation.
// Requires an OrderUoWFactory for transactional persistence.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deliver command.
// Failure cases carried in the Result: order not found, order assigned to a
// different courier, order not in Sent status, or a concurrent write won.
// On success the Result carries the new status and OrderDelivered is stored
// in the outbox.
func (h DeliverOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DeliverOrderCommand,
) (results.Result[order.Status], error) {
	if err := cmd.Validate(); err != nil {
		return results.Result[order.Status]{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return results.Result[order.Status]{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return results.FailureFromError[order.Status](err), nil
	}
	if err != nil {
		return results.Result[order.Status]{}, err
	}

	if courier := aggregate.Courier(); courier == nil || !courier.IsEqual(cmd.CourierID()) {
		return results.Failure[order.Status]("order is assigned to a different courier"), nil
	}

	if err = aggregate.Deliver(); err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) {
			return results.FailureFromError[order.Status](err), nil
		}
		return results.Result[order.Status]{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			return results.FailureFromError[order.Status](err), nil
		}
		return results.Result[order.Status]{}, err
	}

	if err = uow.OutboxRepository().Add(ctx, aggregate.Events()); err != nil {
		return results.Result[order.Status]{}, err
	}
	aggregate.ClearEvents()

	if err = uow.Commit(ctx); err != nil {
		return results.Result[order.Status]{}, err
	}

	return results.Success(aggregate.Status()), nil
}
