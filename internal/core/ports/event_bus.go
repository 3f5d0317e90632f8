package ports

import (
	"context"
)

// EventHandler consumes one event delivery. Handlers must be idempotent:
// the bus guarantees at-least-once delivery, never exactly-once, so the
// same payload may arrive again after a handler error or a redelivery.
type EventHandler func(ctx context.Context, payload []byte) error

// EventBus is the asynchronous backbone of the order saga. Publish hands a
// JSON payload to a topic; Subscribe registers a handler for a topic.
// Subscriptions must be registered before Start.
type EventBus interface {
	// Publish sends a payload to a topic. Delivery is asynchronous and
	// at-least-once.
	Publish(ctx context.Context, topic string, payload []byte) error

	// Subscribe registers a handler for a topic. Multiple handlers per
	// topic each receive every event.
	Subscribe(topic string, handler EventHandler)

	// Start begins consuming. Publish before Start is an error.
	Start(ctx context.Context) error

	// Close drains in-flight deliveries and releases resources.
	Close() error
}
