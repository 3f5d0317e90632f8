package ports

import (
	"context"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment attempts.
// The order identifier is unique per payment, which makes GetByOrderID the
// idempotency lookup for redelivered order-created events.
type PaymentRepository interface {
	// Add persists a new payment attempt.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment attempt.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOrderID retrieves the payment attempt for an order.
	// Returns errs.ObjectNotFoundError when no attempt exists yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
