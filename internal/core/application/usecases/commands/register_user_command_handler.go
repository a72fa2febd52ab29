package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/auth"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/results"
)

// RegisterUserCommandHandler handles account registration.
// Hashes the password and creates the account in the Pending state; an admin
// must approve it before the user can place or deliver orders.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
// Requires a UserUoWFactory for transactional persistence.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// An already taken email comes back as a failed Result. On success the Result
// carries the new account's ID.
func (h RegisterUserCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterUserCommand,
) (results.Result[kernel.UUID], error) {
	if err := cmd.Validate(); err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	passwordHash, err := auth.HashPassword(cmd.Password())
	if err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	account, err := user.NewUser(
		cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Phone(), passwordHash, cmd.Roles())
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

	if err = uow.UserRepository().Add(ctx, account); err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return results.Failure[kernel.UUID]("email is already registered"), nil
		}
		return results.Result[kernel.UUID]{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return results.Result[kernel.UUID]{}, err
	}

	return results.Success(account.ID()), nil
}
