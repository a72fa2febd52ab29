package eventbus

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
)

// orderEventNames lists every order lifecycle event in raising order.
var orderEventNames = []string{
	order.EventNameOrderPlaced,
	order.EventNameOrderAccepted,
	order.EventNameOrderSent,
	order.EventNameOrderDelivered,
}

// SubscribeOrderLogging attaches a subscriber that records every order
// lifecycle transition. It stands in for outward notification channels (mail,
// push) and doubles as an audit trail of published events. Logging is
// idempotent, so at-least-once redelivery is harmless here.
func SubscribeOrderLogging(dispatcher *Dispatcher, logger *slog.Logger) {
	eventLogger := logger.With("component", "order_event_log")

	handler := func(ctx context.Context, event order.DomainEvent) error {
		attrs := []any{
			"event", event.EventName(),
			"order_id", event.OrderID().String(),
			"occurred_at", event.OccurredAt(),
		}
		if accepted, ok := event.(order.OrderAccepted); ok {
			attrs = append(attrs, "courier_id", accepted.CourierID().String())
		}

		eventLogger.InfoContext(ctx, "Order event published", attrs...)
		return nil
	}

	for _, name := range orderEventNames {
		dispatcher.Subscribe(name, handler)
	}
}
