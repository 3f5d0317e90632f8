package ports

import (
	"context"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/restaurant"
)

// RestaurantOrderRepository defines the persistence contract for kitchen
// tickets. The order identifier carries a unique constraint, so a
// redelivered order-paid event cannot open a second ticket.
type RestaurantOrderRepository interface {
	// Add persists a new kitchen ticket.
	Add(ctx context.Context, aggregate *restaurant.RestaurantOrder) error

	// Update persists changes to an existing kitchen ticket.
	Update(ctx context.Context, aggregate *restaurant.RestaurantOrder) error

	// Get retrieves a ticket by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.RestaurantOrder, error)

	// GetByOrderID retrieves the ticket opened for an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*restaurant.RestaurantOrder, error)
}
