package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/results"
)

// SendOrderCommandHandler handles the Accepted -> Sent transition.
// Verifies the reporting courier is the order's assigned courier before
// transitioning.
type SendOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSendOrderCommandHandler creates a handler for send operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewSendOrderCommandHandler(uowFactory OrderUoWFactory) SendOrderCommandHandler {
	return SendOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the send command.
// Failure cases carried in the Result: order not found, order assigned to a
// different courier, order not in Accepted status, or a concurrent write won.
// On success the Result carries the new status and OrderSent is stored in the
// outbox.
func (h SendOrderCommandHandler) Handle(
	ctx context.Context,
	cmd SendOrderCommand,
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

	if err = aggregate.Send(); err != nil {
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
