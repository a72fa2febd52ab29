package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/results"
)

// ReviewAccountCommandHandler handles admin review of pending accounts.
type ReviewAccountCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewReviewAccountCommandHandler creates a handler for account review.
// Requires a UserUoWFactory for transactional persistence.
func NewReviewAccountCommandHandler(uowFactory UserUoWFactory) ReviewAccountCommandHandler {
	return ReviewAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
// Failure cases carried in the Result: account not found, or the account is
// not in the Pending state (review decisions are terminal). On success the
// Result carries the account's new state.
func (h ReviewAccountCommandHandler) Handle(
	ctx context.Context,
	cmd ReviewAccountCommand,
) (results.Result[user.AccountState], error) {
	if err := cmd.Validate(); err != nil {
		return results.Result[user.AccountState]{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return results.Result[user.AccountState]{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	account, err := userRepo.Get(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return results.FailureFromError[user.AccountState](err), nil
	}
	if err != nil {
		return results.Result[user.AccountState]{}, err
	}

	if cmd.Approve() {
		err = account.Approve()
	} else {
		err = account.Decline()
	}
	if err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) {
			return results.FailureFromError[user.AccountState](err), nil
		}
		return results.Result[user.AccountState]{}, err
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return results.Result[user.AccountState]{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return results.Result[user.AccountState]{}, err
	}

	return results.Success(account.State()), nil
}
