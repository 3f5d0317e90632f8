package ports

import (
	"context"

	"fooddrone/internal/core/domain/model/delivery"
	"fooddrone/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for flight records.
// The order identifier carries a unique constraint, so a redelivered
// order-ready event cannot open a second flight for the same order.
type DeliveryRepository interface {
	// Add persists a new flight record.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing flight record.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a flight by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the flight opened for an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetAllActive retrieves every flight the motion sweep must advance.
	GetAllActive(ctx context.Context) ([]*delivery.Delivery, error)
}
