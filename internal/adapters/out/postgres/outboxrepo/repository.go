package outboxrepo

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores the events as unpublished messages in the current transaction.
// Adding no events is a no-op.
func (r *GormOutboxRepository) Add(ctx context.Context, events []order.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxMessageDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, fromEvent(event))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnpublished retrieves up to limit unpublished messages, oldest first.
func (r *GormOutboxRepository) GetUnpublished(
	ctx context.Context,
	limit int,
) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		message, msgErr := toMessage(dto)
		if msgErr != nil {
			return nil, msgErr
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// MarkPublished stamps the messages with the given identifiers as delivered.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		raw = append(raw, id.Bytes())
	}

	now := time.Now()
	return r.db.WithContext(ctx).Model(&OutboxMessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", &now).Error
}
