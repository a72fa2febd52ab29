package user

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// AccountState represents the review state of a user account.
// It implements a small state machine: every account starts Pending and an
// admin moves it exactly once to Approved or Declined.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          └──> Declined
//
// Both outcomes are terminal; there is no path back to Pending.
type AccountState int

const (
	// UnknownState represents an invalid or undefined account state.
	// This value (0) helps catch uninitialized AccountState values.
	UnknownState AccountState = iota

	// Pending is the initial state after registration, awaiting admin review.
	Pending

	// Declined means an admin rejected the account. Terminal.
	Declined

	// Approved means an admin approved the account. Terminal.
	Approved
)

func getAccountStateStrings() map[AccountState]string {
	return map[AccountState]string{
		UnknownState: "Unknown",
		Pending:      "Pending",
		Declined:     "Declined",
		Approved:     "Approved",
	}
}

func getValidAccountStateStrings() map[AccountState]string {
	//nolint:exhaustive // UnknownState is intentionally excluded as it's invalid
	return map[AccountState]string{
		Pending:  "Pending",
		Declined: "Declined",
		Approved: "Approved",
	}
}

// Validate checks if the AccountState value is valid.
// Valid states are: Pending, Declined, Approved.
func (s AccountState) Validate() error {
	if _, ok := getValidAccountStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("account state",
			fmt.Errorf("%d is not a valid account state", s))
	}
	return nil
}

// String returns the human-readable name of the account state.
func (s AccountState) String() string {
	if str, ok := getAccountStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Approve transitions the state to Approved.
// Only Pending accounts can be approved; any other state returns an
// InvalidTransitionError.
func (s AccountState) Approve() (AccountState, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("account state", s.String(), Approved.String())
	}
	return Approved, nil
}

// Decline transitions the state to Declined.
// Only Pending accounts can be declined; any other state returns an
// InvalidTransitionError.
func (s AccountState) Decline() (AccountState, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("account state", s.String(), Declined.String())
	}
	return Declined, nil
}
