package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// minPasswordLength is the shortest password accepted at registration.
const minPasswordLength = 8

// RegisterUserCommand represents a request to create a new account.
// The account starts in the Pending state and cannot act until an admin
// approves it.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	phone    string
	password string
	roles    []user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
// Validates the identifier, requires name, email, and a password of at least
// eight characters, and at least one valid role.
func NewRegisterUserCommand(
	userID kernel.UUID,
	name string,
	email string,
	phone string,
	password string,
	roles []user.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRoles(roles),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.phone = phone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the unique identifier for the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the account email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Phone returns the contact phone number. May be empty.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Password returns the plaintext password. It is hashed by the handler and
// never stored.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Roles returns a copy of the requested roles.
func (c RegisterUserCommand) Roles() []user.Role {
	roles := make([]user.Role, len(c.roles))
	copy(roles, c.roles)
	return roles
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRoles(roles []user.Role) error {
	if len(roles) == 0 {
		return errs.NewValueIsRequiredError("roles")
	}

	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return err
		}
	}

	c.roles = make([]user.Role, len(roles))
	copy(c.roles, roles)
	return nil
}
