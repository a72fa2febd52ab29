// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Handlers return a Result carrying either the outcome value
// or the business reasons the operation was refused; infrastructure problems
// come back as plain errors.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest unit of work it needs, so tests can mock
// exactly the repositories a command touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// FoodItemRepoFactory provides access to the food item repository within a transaction.
	FoodItemRepoFactory interface {
		FoodItemRepository() ports.FoodItemRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OutboxRepoFactory provides access to the outbox repository within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for order lifecycle operations.
	// Order state changes raise domain events, so the outbox always rides along.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW manages transactions for order placement, which also reads
	// the menu to snapshot names and prices.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		FoodItemRepoFactory
		OutboxRepoFactory
	}

	// PlaceOrderUoWFactory creates new place-order unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// FoodItemUoW manages transactions for menu management operations.
	FoodItemUoW interface {
		TxManager
		FoodItemRepoFactory
	}

	// FoodItemUoWFactory creates new food item unit of work instances.
	FoodItemUoWFactory interface {
		Create() FoodItemUoW
	}

	// UserUoW manages transactions for account operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
