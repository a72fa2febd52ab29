package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/results"
)

// AcceptOrderCommandHandler handles courier acceptance of submitted orders.
//
// Two couriers racing for the same order is the expected contention case: the
// order row carries a version token, so the second Update fails with a
// concurrency conflict and comes back as a failed Result the courier can act
// on (pick another order) rather than as an error.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
// Requires an OrderUoWFactory for transactional persistence.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Failure cases carried in the Result: order not found, order not in
// Submitted status, or a concurrent writer won the race. On success the
// Result carries the order's new status and OrderAccepted is stored in the
// outbox.
func (h AcceptOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AcceptOrderCommand,
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

	if err = aggregate.Accept(cmd.CourierID()); err != nil {
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
