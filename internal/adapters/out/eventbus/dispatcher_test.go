package eventbus_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/eventbus"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePlacedEvent(t *testing.T) order.DomainEvent {
	t.Helper()

	event, err := order.RestoreEvent(order.EventNameOrderPlaced, kernel.NewUUID(), nil, time.Now())
	require.NoError(t, err)
	return event
}

func TestDispatcher_Publish(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("delivers to subscribers in registration order", func(t *testing.T) {
		dispatcher := eventbus.NewDispatcher(logger)

		var calls []string
		dispatcher.Subscribe(order.EventNameOrderPlaced, func(_ context.Context, _ order.DomainEvent) error {
			calls = append(calls, "first")
			return nil
		})
		dispatcher.Subscribe(order.EventNameOrderPlaced, func(_ context.Context, _ order.DomainEvent) error {
			calls = append(calls, "second")
			return nil
		})

		err := dispatcher.Publish(t.Context(), makePlacedEvent(t))

		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("no subscribers is a successful delivery", func(t *testing.T) {
		dispatcher := eventbus.NewDispatcher(logger)

		require.NoError(t, dispatcher.Publish(t.Context(), makePlacedEvent(t)))
	})

	t.Run("does not deliver to other event names", func(t *testing.T) {
		dispatcher := eventbus.NewDispatcher(logger)

		called := false
		dispatcher.Subscribe(order.EventNameOrderDelivered, func(_ context.Context, _ order.DomainEvent) error {
			called = true
			return nil
		})

		require.NoError(t, dispatcher.Publish(t.Context(), makePlacedEvent(t)))
		assert.False(t, called)
	})

	t.Run("a failing subscriber does not stop the others", func(t *testing.T) {
		dispatcher := eventbus.NewDispatcher(logger)

		subscriberErr := errors.New("notification service down")
		secondCalled := false
		dispatcher.Subscribe(order.EventNameOrderPlaced, func(_ context.Context, _ order.DomainEvent) error {
			return subscriberErr
		})
		dispatcher.Subscribe(order.EventNameOrderPlaced, func(_ context.Context, _ order.DomainEvent) error {
			secondCalled = true
			return nil
		})

		err := dispatcher.Publish(t.Context(), makePlacedEvent(t))

		require.ErrorIs(t, err, subscriberErr)
		assert.True(t, secondCalled)
	})
}
