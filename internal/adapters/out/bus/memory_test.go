package bus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"fooddrone/internal/adapters/out/bus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryBus_DeliversToSubscriber(t *testing.T) {
	b := bus.NewMemoryBus(discardLogger())
	defer b.Close()

	received := make(chan []byte, 1)
	b.Subscribe("order.created", func(_ context.Context, payload []byte) error {
		received <- payload
		return nil
	})
	require.NoError(t, b.Start(t.Context()))

	require.NoError(t, b.Publish(t.Context(), "order.created", []byte(`{"orderId":"o-1"}`)))

	select {
	case payload := <-received:
		assert.JSONEq(t, `{"orderId":"o-1"}`, string(payload))
	case <-time.After(2 * time.Second):
		t.Fatal("delivery never arrived")
	}
}

func TestMemoryBus_EveryHandlerReceivesEveryEvent(t *testing.T) {
	b := bus.NewMemoryBus(discardLogger())
	defer b.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	for range 2 {
		b.Subscribe("order.paid", func(_ context.Context, _ []byte) error {
			wg.Done()
			return nil
		})
	}
	require.NoError(t, b.Start(t.Context()))
	require.NoError(t, b.Publish(t.Context(), "order.paid", []byte(`{}`)))

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("not every handler was invoked")
	}
}

func TestMemoryBus_RedeliversAfterHandlerError(t *testing.T) {
	b := bus.NewMemoryBus(discardLogger())
	defer b.Close()

	attempts := make(chan int, 3)
	calls := 0
	b.Subscribe("payment.processed", func(_ context.Context, _ []byte) error {
		calls++
		attempts <- calls
		if calls == 1 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, b.Start(t.Context()))
	require.NoError(t, b.Publish(t.Context(), "payment.processed", []byte(`{}`)))

	deadline := time.After(2 * time.Second)
	var last int
	for last < 2 {
		select {
		case last = <-attempts:
		case <-deadline:
			t.Fatalf("redelivery never happened, last attempt %d", last)
		}
	}
}

func TestMemoryBus_PublishBeforeStartFails(t *testing.T) {
	b := bus.NewMemoryBus(discardLogger())

	err := b.Publish(t.Context(), "order.created", []byte(`{}`))
	require.ErrorIs(t, err, bus.ErrBusNotStarted)
}

func TestMemoryBus_PublishAfterCloseFails(t *testing.T) {
	b := bus.NewMemoryBus(discardLogger())
	require.NoError(t, b.Start(t.Context()))
	require.NoError(t, b.Close())

	err := b.Publish(t.Context(), "order.created", []byte(`{}`))
	require.ErrorIs(t, err, bus.ErrBusClosed)
}

func TestMemoryBus_CloseDrainsQueue(t *testing.T) {
	b := bus.NewMemoryBus(discardLogger())

	var mu sync.Mutex
	delivered := 0
	b.Subscribe("drone.location.update", func(_ context.Context, _ []byte) error {
		mu.Lock()
		delivered++
		mu.Unlock()
		return nil
	})
	require.NoError(t, b.Start(t.Context()))

	for range 20 {
		require.NoError(t, b.Publish(t.Context(), "drone.location.update", []byte(`{}`)))
	}
	require.NoError(t, b.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 20, delivered)
}
