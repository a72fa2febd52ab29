// Package user provides the User aggregate: an account with contact details,
// roles, and an admin-reviewed account state. Identity concerns (credential
// checks, token issuing) live outside the domain; the aggregate only holds the
// resulting password hash.
package user

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is an account in the system. Users are never hard-deleted: orders keep
// non-owning references to their customer and courier, which must outlive any
// order.
//
// Account state is admin-transitionable only: Pending -> Approved or
// Pending -> Declined, both terminal.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	passwordHash string
	roles        []Role
	state        AccountState

	isConstructed bool
}

// NewUser creates a user in the Pending account state.
// Name, email, and password hash are required; the email must look like an
// address (full syntactic validation happens at the transport layer). At
// least one valid role must be given.
func NewUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	passwordHash string,
	roles []Role,
) (*User, error) {
	u := &User{
		state:         Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRoles(roles),
	); err != nil {
		return nil, err
	}

	u.phone = phone
	return u, nil
}

// RestoreUser reconstructs a User from persistence without changing state.
func RestoreUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	passwordHash string,
	roles []Role,
	state AccountState,
) (*User, error) {
	u, err := NewUser(id, name, email, phone, passwordHash, roles)
	if err != nil {
		return nil, err
	}

	if err = state.Validate(); err != nil {
		return nil, err
	}

	u.state = state
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier. Immutable once assigned.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the contact email address.
func (u *User) Email() string {
	return u.email
}

// Phone returns the contact phone number. May be empty.
func (u *User) Phone() string {
	return u.phone
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Roles returns a copy of the user's roles.
func (u *User) Roles() []Role {
	roles := make([]Role, len(u.roles))
	copy(roles, u.roles)
	return roles
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.roles {
		if r == role {
			return true
		}
	}
	return false
}

// State returns the current account state.
func (u *User) State() AccountState {
	return u.state
}

// Approve moves a Pending account to Approved. Admin-only operation; any
// other starting state returns an InvalidTransitionError and leaves the
// account unchanged.
func (u *User) Approve() error {
	newState, err := u.state.Approve()
	if err != nil {
		return err
	}

	u.state = newState
	return nil
}

// Decline moves a Pending account to Declined. Admin-only operation; any
// other starting state returns an InvalidTransitionError and leaves the
// account unchanged.
func (u *User) Decline() error {
	newState, err := u.state.Decline()
	if err != nil {
		return err
	}

	u.state = newState
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRoles(roles []Role) error {
	if len(roles) == 0 {
		return errs.NewValueIsRequiredError("roles")
	}

	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return err
		}
	}

	u.roles = make([]Role, len(roles))
	copy(u.roles, roles)
	return nil
}
