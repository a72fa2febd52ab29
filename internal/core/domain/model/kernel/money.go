package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in
// integer cents. Keeping amounts in cents avoids floating-point rounding in
// price arithmetic.
//
// The zero value is a valid zero amount, so Money can be embedded and summed
// without a constructor guard. Negative amounts are rejected at construction.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an amount in cents.
// Returns an error for negative amounts.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulQty returns the amount multiplied by a non-negative quantity.
// Used to compute line totals from a unit price.
func (m Money) MulQty(qty int) (Money, error) {
	if qty < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", qty))
	}
	return Money{cents: m.cents * int64(qty)}, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// String returns a human-readable representation such as "$12.50".
func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m.cents/100, m.cents%100)
}
