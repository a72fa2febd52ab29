package fooditemrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/fooditem"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFoodItemRepository implements FoodItemRepository using GORM.
type GormFoodItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFoodItemRepository creates a new GORM food item repository.
func NewGormFoodItemRepository(db *gorm.DB, tracker aggregateTracker) *GormFoodItemRepository {
	return &GormFoodItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new food item to the database.
// A duplicate primary key is reported as a ValueIsInvalidError.
func (r *GormFoodItemRepository) Add(ctx context.Context, aggregate *fooditem.FoodItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("food item id", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing food item to the database.
func (r *GormFoodItemRepository) Update(ctx context.Context, aggregate *fooditem.FoodItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&FoodItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":        dto.Name,
			"price_cents": dto.PriceCents,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("food item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a food item by ID.
func (r *GormFoodItemRepository) Get(ctx context.Context, id kernel.UUID) (*fooditem.FoodItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FoodItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("food item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the food items with the given identifiers.
// Missing identifiers are simply absent from the result.
func (r *GormFoodItemRepository) GetByIDs(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*fooditem.FoodItem, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []FoodItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	items := make([]*fooditem.FoodItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Delete removes a food item from the menu.
// Deleting a missing item returns an ObjectNotFoundError, so repeating the
// same delete fails rather than silently succeeding.
func (r *GormFoodItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&FoodItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("food item", id.String())
	}

	return nil
}
