// Package bus provides the EventBus implementations the saga runs on: an
// in-process channel bus for single-node deployments and tests, and a Kafka
// bus for distributed ones. Both deliver at-least-once; handler idempotency
// is the subscribers' contract, not the bus's.
package bus

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fooddrone/internal/core/ports"
)

const (
	memoryBufferSize   = 256
	memoryWorkers      = 4
	memoryRedeliveries = 3
	redeliveryBackoff  = 100 * time.Millisecond
)

var (
	// ErrBusNotStarted is returned by Publish before Start.
	ErrBusNotStarted = errors.New("event bus is not started")

	// ErrBusClosed is returned by Publish after Close.
	ErrBusClosed = errors.New("event bus is closed")
)

type envelope struct {
	topic   string
	payload []byte
}

// MemoryBus is an in-process EventBus backed by a buffered channel and a
// small worker pool. A handler error requeues the delivery to that handler
// up to the redelivery limit, which is what makes the at-least-once contract
// real even without a broker.
type MemoryBus struct {
	logger *slog.Logger

	mu       sync.RWMutex
	handlers map[string][]ports.EventHandler
	started  bool
	closed   bool

	deliveries chan envelope
	ctx        context.Context
	wg         sync.WaitGroup
}

// NewMemoryBus creates an in-process bus.
func NewMemoryBus(logger *slog.Logger) *MemoryBus {
	return &MemoryBus{
		logger:     logger.With("component", "memory_bus"),
		handlers:   make(map[string][]ports.EventHandler),
		deliveries: make(chan envelope, memoryBufferSize),
	}
}

// Subscribe registers a handler for a topic. Must be called before Start.
func (b *MemoryBus) Subscribe(topic string, handler ports.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

// Publish enqueues a payload for asynchronous delivery.
func (b *MemoryBus) Publish(_ context.Context, topic string, payload []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}
	if !b.started {
		return ErrBusNotStarted
	}

	b.deliveries <- envelope{topic: topic, payload: payload}
	return nil
}

// Start launches the worker pool. The given context bounds handler
// execution for the bus's whole lifetime.
func (b *MemoryBus) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return nil
	}

	b.ctx = ctx
	b.started = true
	for range memoryWorkers {
		b.wg.Add(1)
		go b.work()
	}

	return nil
}

// Close stops accepting publishes, drains the queue, and waits for the
// workers to finish.
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	close(b.deliveries)
	b.wg.Wait()
	return nil
}

func (b *MemoryBus) work() {
	defer b.wg.Done()

	for env := range b.deliveries {
		b.mu.RLock()
		handlers := b.handlers[env.topic]
		b.mu.RUnlock()

		for _, handler := range handlers {
			b.deliver(env, handler)
		}
	}
}

func (b *MemoryBus) deliver(env envelope, handler ports.EventHandler) {
	var err error
	for attempt := 1; attempt <= memoryRedeliveries; attempt++ {
		if err = handler(b.ctx, env.payload); err == nil {
			return
		}

		b.logger.Warn("event handler failed",
			"topic", env.topic,
			"attempt", attempt,
			"error", err)

		select {
		case <-b.ctx.Done():
			return
		case <-time.After(redeliveryBackoff * time.Duration(attempt)):
		}
	}

	b.logger.Error("event dropped after redelivery limit",
		"topic", env.topic,
		"redeliveries", memoryRedeliveries,
		"error", err)
}
