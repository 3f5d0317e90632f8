// Package redisnotify pushes customer-facing updates over Redis pub/sub.
// A frontend gateway subscribes to the per-order channels and relays them to
// connected clients; this process only fans out.
package redisnotify

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const (
	deliveryChannelPrefix = "delivery/"
	locationChannelPrefix = "drone-location/"
)

// Notifier publishes updates on per-order Redis channels.
type Notifier struct {
	client *redis.Client
}

// NewNotifier creates a notifier over the given Redis client.
func NewNotifier(client *redis.Client) *Notifier {
	return &Notifier{client: client}
}

// NotifyDeliveryStatus publishes a status update on delivery/{orderId}.
func (n *Notifier) NotifyDeliveryStatus(ctx context.Context, orderID string, payload []byte) error {
	return n.client.Publish(ctx, deliveryChannelPrefix+orderID, payload).Err()
}

// NotifyDroneLocation publishes a position update on drone-location/{orderId}.
func (n *Notifier) NotifyDroneLocation(ctx context.Context, orderID string, payload []byte) error {
	return n.client.Publish(ctx, locationChannelPrefix+orderID, payload).Err()
}
