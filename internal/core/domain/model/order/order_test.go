package order_test

import (
	"testing"
	"time"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/order"
	"fooddrone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDeliveryInfo() order.DeliveryInfo {
	return order.DeliveryInfo{
		FullName: "Nguyen Van A",
		Phone:    "0900000000",
		Address:  "12 Nguyen Hue, District 1",
	}
}

func newTestOrder(t *testing.T, items ...order.Item) *order.Order {
	t.Helper()

	if len(items) == 0 {
		item, err := order.NewItem(kernel.NewUUID(), "Pho Bo", 2, 5.0)
		require.NoError(t, err)
		items = []order.Item{item}
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		items, validDeliveryInfo(), "CASH",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("computes total from item snapshots", func(t *testing.T) {
		itemA, err := order.NewItem(kernel.NewUUID(), "Pho Bo", 1, 10.0)
		require.NoError(t, err)
		itemB, err := order.NewItem(kernel.NewUUID(), "Goi Cuon", 2, 5.0)
		require.NoError(t, err)

		o := newTestOrder(t, itemA, itemB)

		assert.InDelta(t, 20.0, o.TotalPrice(), 1e-9)
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, validDeliveryInfo(), "CASH",
		)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing contact fields", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Pho Bo", 1, 10.0)
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{item}, order.DeliveryInfo{FullName: "A"}, "CASH",
		)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Pho Bo", 0, 10.0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Pho Bo", 1, -1)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderPaymentOutcomes(t *testing.T) {
	t.Run("confirm on success", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ConfirmPayment())

		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, order.PaymentSuccess, o.PaymentStatus())
	})

	t.Run("cancel on failure", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.RejectPayment())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
	})

	t.Run("second confirm is a conflict", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ConfirmPayment())

		assert.ErrorIs(t, o.ConfirmPayment(), errs.ErrConflict)
	})
}

func TestOrderFullLifecycle(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.ConfirmPayment())
	require.NoError(t, o.StartPreparing())
	require.NoError(t, o.MarkReady())
	require.NoError(t, o.MarkPickedUp("DRONE-AB12CD34"))
	require.NoError(t, o.StartDelivering())
	require.NoError(t, o.Complete(time.Now()))

	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, "DRONE-AB12CD34", o.DroneID())
	assert.NotNil(t, o.PickedUpAt())
	assert.NotNil(t, o.DeliveredAt())
}

func TestOrderCancel(t *testing.T) {
	t.Run("legal mid-flight", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ConfirmPayment())
		require.NoError(t, o.StartPreparing())

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("illegal after delivery", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ConfirmPayment())
		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.MarkPickedUp("DRONE-AB12CD34"))
		require.NoError(t, o.StartDelivering())
		require.NoError(t, o.Complete(time.Now()))

		assert.ErrorIs(t, o.Cancel(), errs.ErrConflict)
	})
}

func TestOrderFailReservation(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.FailReservation())
	assert.Equal(t, order.Failed, o.Status())

	// Failed is terminal.
	assert.ErrorIs(t, o.ConfirmPayment(), errs.ErrConflict)
	assert.ErrorIs(t, o.Cancel(), errs.ErrConflict)
}

func TestOrderMarkPickedUpRequiresDrone(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.ConfirmPayment())
	require.NoError(t, o.StartPreparing())
	require.NoError(t, o.MarkReady())

	assert.ErrorIs(t, o.MarkPickedUp(""), errs.ErrValueIsRequired)
}
