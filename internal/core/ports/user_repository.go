package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Users are never deleted: orders keep references to customers and couriers
// that must stay resolvable for the lifetime of the system.
type UserRepository interface {
	// Add persists a new user to storage.
	// Returns a ValueIsInvalidError wrapping the driver error when the email
	// is already taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	// Returns an ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns an ObjectNotFoundError when no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
