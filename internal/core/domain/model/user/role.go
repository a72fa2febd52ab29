package user

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Role names a capability set granted to a user. A user may hold several
// roles at once (an admin who also delivers, for example).
type Role string

const (
	// RoleCustomer can place orders and track their own deliveries.
	RoleCustomer Role = "customer"
	// RoleCourier can accept, send, and deliver orders.
	RoleCourier Role = "courier"
	// RoleAdmin can manage food items and review accounts.
	RoleAdmin Role = "admin"
)

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleCourier, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}
