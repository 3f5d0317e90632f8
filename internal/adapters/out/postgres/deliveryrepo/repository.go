package deliveryrepo

import (
	"context"
	"errors"

	"fooddrone/internal/core/domain/model/delivery"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM flight record repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new flight record to the database. The unique index on the
// order ID guarantees one flight per order even under redelivered dispatch
// events.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
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

// Update saves an existing flight record to the database. All columns are
// written: the arrival estimate goes back to NULL when the flight completes,
// which a partial update would miss.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a flight record by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the flight record for an order.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every flight still in the air, oldest first so the
// motion sweep advances them in dispatch order.
func (r *GormDeliveryRepository) GetAllActive(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status IN ?", []string{
			delivery.PickingUp.String(),
			delivery.Delivering.String(),
		}).Error
	if err != nil {
		return nil, err
	}

	flights := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		flight, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		flights = append(flights, flight)
	}

	return flights, nil
}
