package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions (forward-only, no cancellation path):
//
//	Submitted ──> Accepted ──> Sent ──> Delivered
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Submitted is the initial status when an order is placed by a customer.
	// Orders in this status are waiting for a courier to accept them.
	Submitted

	// Accepted indicates a courier has taken the order.
	// The courier is assigned at this transition and never changes afterwards.
	Accepted

	// Sent indicates the order has left the kitchen and is on its way.
	Sent

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Submitted: "Submitted",
		Accepted:  "Accepted",
		Sent:      "Sent",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Submitted: "Submitted",
		Accepted:  "Accepted",
		Sent:      "Sent",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Submitted, Accepted, Sent, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is a final state.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment. Submitted orders must not have a courier; Accepted, Sent
// and Delivered orders must.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Submitted {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()))
	}
	if !courier && (s == Accepted || s == Sent || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()))
	}
	return nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Submitted -> Accepted
//
// Returns (0, InvalidTransitionError) if the order is not currently Submitted.
func (s Status) Accept() (Status, error) {
	if s != Submitted {
		return 0, errs.NewInvalidTransitionError("order status", s.String(), Accepted.String())
	}
	return Accepted, nil
}

// Send transitions the status to Sent.
//
// Valid transitions:
//   - Accepted -> Sent
//
// Returns (0, InvalidTransitionError) if the order is not currently Accepted.
func (s Status) Send() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidTransitionError("order status", s.String(), Sent.String())
	}
	return Sent, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Sent -> Delivered
//
// Delivered is a final state with no further transitions possible.
// Returns (0, InvalidTransitionError) if the order is not currently Sent.
func (s Status) Deliver() (Status, error) {
	if s != Sent {
		return 0, errs.NewInvalidTransitionError("order status", s.String(), Delivered.String())
	}
	return Delivered, nil
}
