package orderrepo

import (
	"context"
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/order"
	"fooddrone/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line snapshots to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Order lines are never
// rewritten; only the order row changes after placement.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Items = nil
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByUser retrieves all orders placed by the given user, newest first.
func (r *GormOrderRepository) GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&dtos, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
