package ports

import (
	"context"
)

// Notifier pushes customer-facing updates onto per-order channels so a
// frontend can follow an order and its drone in real time. Notification
// failures are best-effort and never fail the publishing command.
type Notifier interface {
	// NotifyDeliveryStatus publishes a status update on the order's
	// delivery channel.
	NotifyDeliveryStatus(ctx context.Context, orderID string, payload []byte) error

	// NotifyDroneLocation publishes a position update on the order's
	// drone-location channel.
	NotifyDroneLocation(ctx context.Context, orderID string, payload []byte) error
}
