package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrReviewAccountCommandIsNotConstructed = errors.New(
	"ReviewAccountCommand must be created via NewReviewAccountCommand constructor",
)

// ReviewAccountCommand represents an admin's decision on a pending account:
// approve it or decline it. Both outcomes are terminal.
type ReviewAccountCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	approve bool

	guard guard.ConstructorGuard
}

// NewReviewAccountCommand creates a command to review a pending account.
// approve true approves the account, false declines it.
func NewReviewAccountCommand(userID kernel.UUID, approve bool) (ReviewAccountCommand, error) {
	cmd := ReviewAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := userID.Validate(); err != nil {
		return ReviewAccountCommand{}, err
	}

	cmd.userID = userID
	cmd.approve = approve
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewAccountCommand) Validate() error {
	return c.guard.Validate(ErrReviewAccountCommandIsNotConstructed)
}

// UserID returns the identifier of the account under review.
func (c ReviewAccountCommand) UserID() kernel.UUID {
	return c.userID
}

// Approve reports whether the decision is an approval.
func (c ReviewAccountCommand) Approve() bool {
	return c.approve
}
