package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// running transaction. Client code must explicitly manage the lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Safe to defer after a successful Commit; it becomes a no-op.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the transaction.
	OrderRepository() OrderRepository

	// PaymentRepository returns a PaymentRepository bound to the transaction.
	PaymentRepository() PaymentRepository

	// RestaurantOrderRepository returns a RestaurantOrderRepository bound to
	// the transaction.
	RestaurantOrderRepository() RestaurantOrderRepository

	// DroneRepository returns a DroneRepository bound to the transaction.
	DroneRepository() DroneRepository

	// DeliveryRepository returns a DeliveryRepository bound to the transaction.
	DeliveryRepository() DeliveryRepository
}
