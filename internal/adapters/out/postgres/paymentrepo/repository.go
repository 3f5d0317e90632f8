package paymentrepo

import (
	"context"
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/payment"
	"fooddrone/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment attempt to the database. The unique index on the
// order ID turns a concurrent duplicate insert into a conflict.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
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

// Update saves an existing payment attempt to the database.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PaymentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment attempt by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the payment attempt for an order.
func (r *GormPaymentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
