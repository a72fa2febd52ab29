// Package eventbus provides the in-process domain event dispatcher. Order
// events committed to the outbox are fanned out to subscribers registered
// here: a notification sender, a statistics projector, anything that wants to
// react to order lifecycle transitions without being part of the command
// transaction.
//
// Delivery is at-least-once: the outbox dispatch job re-publishes events
// whose previous delivery was not confirmed, so subscribers must be
// idempotent on (order id, event name).
package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"fooddelivery/internal/core/domain/model/order"
)

// HandlerFunc processes a single domain event.
// Returning an error keeps the event unconfirmed; it will be delivered again.
type HandlerFunc func(ctx context.Context, event order.DomainEvent) error

// Dispatcher fans domain events out to subscribers by event name.
// Safe for concurrent use; Subscribe is expected at composition time but may
// be called at any point.
type Dispatcher struct {
	mu          sync.RWMutex
	subscribers map[string][]HandlerFunc
	logger      *slog.Logger
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		subscribers: make(map[string][]HandlerFunc),
		logger:      logger.With("component", "event_dispatcher"),
	}
}

// Subscribe registers a handler for the given event name.
// Handlers for the same name run in registration order.
func (d *Dispatcher) Subscribe(eventName string, handler HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers[eventName] = append(d.subscribers[eventName], handler)
}

// Publish delivers the event to every subscriber of its name.
// All subscribers run even if an earlier one fails; the joined error is
// returned so the caller keeps the event unconfirmed in the outbox.
// An event without subscribers is delivered successfully by definition.
func (d *Dispatcher) Publish(ctx context.Context, event order.DomainEvent) error {
	d.mu.RLock()
	handlers := d.subscribers[event.EventName()]
	d.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			d.logger.ErrorContext(ctx, "Event subscriber failed",
				"event", event.EventName(),
				"order_id", event.OrderID().String(),
				"error", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
