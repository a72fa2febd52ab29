package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// dispatchBatchSize bounds how many outbox messages one tick processes.
const dispatchBatchSize = 100

// OutboxDispatchJob drains the transactional outbox. Runs every second:
// reads unpublished messages oldest first, hands each to the event publisher,
// and confirms the ones every subscriber accepted. Messages whose delivery
// failed stay unpublished and are retried on the next tick, which is what
// makes delivery at-least-once.
type OutboxDispatchJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxDispatchJob creates a new job for draining the outbox.
func NewOutboxDispatchJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *OutboxDispatchJob {
	return &OutboxDispatchJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_dispatch_job"),
	}
}

// Start begins the outbox dispatch job to run every second.
func (j *OutboxDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.dispatchOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job started (running every second)")
	return nil
}

// Stop stops the outbox dispatch job.
func (j *OutboxDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job stopped")
}

func (j *OutboxDispatchJob) dispatchOnce(ctx context.Context) error {
	messages, err := j.outbox.GetUnpublished(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	published := make([]kernel.UUID, 0, len(messages))
	for _, message := range messages {
		if pubErr := j.publisher.Publish(ctx, message.Event); pubErr != nil {
			// Leave the message unpublished; the next tick retries it.
			j.logger.WarnContext(ctx, "Event delivery incomplete, will retry",
				"event", message.Event.EventName(),
				"order_id", message.Event.OrderID().String(),
				"error", pubErr)
			continue
		}
		published = append(published, message.ID)
	}

	return j.outbox.MarkPublished(ctx, published)
}
