package restaurantrepo

import (
	"context"
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/restaurant"
	"fooddrone/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantOrderRepository implements RestaurantOrderRepository using GORM.
type GormRestaurantOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRestaurantOrderRepository creates a new GORM kitchen ticket repository.
func NewGormRestaurantOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantOrderRepository {
	return &GormRestaurantOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new kitchen ticket to the database.
func (r *GormRestaurantOrderRepository) Add(ctx context.Context, aggregate *restaurant.RestaurantOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("orderId", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing kitchen ticket to the database.
func (r *GormRestaurantOrderRepository) Update(ctx context.Context, aggregate *restaurant.RestaurantOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RestaurantOrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurantOrder", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a kitchen ticket by ID.
func (r *GormRestaurantOrderRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.RestaurantOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurantOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the kitchen ticket for an order.
func (r *GormRestaurantOrderRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*restaurant.RestaurantOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurantOrder", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
