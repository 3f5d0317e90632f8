package order_test

import (
	"testing"

	"fooddrone/internal/core/domain/model/order"
	"fooddrone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitionTo(t *testing.T) {
	legal := []struct {
		from order.Status
		to   order.Status
	}{
		{order.New, order.Confirmed},
		{order.New, order.Failed},
		{order.Confirmed, order.Preparing},
		{order.Preparing, order.Ready},
		{order.Ready, order.PickedUp},
		{order.PickedUp, order.Delivering},
		{order.Delivering, order.Delivered},
	}

	for _, tc := range legal {
		t.Run(tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			got, err := tc.from.TransitionTo(tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, got)
		})
	}

	illegal := []struct {
		from order.Status
		to   order.Status
	}{
		{order.New, order.Preparing},
		{order.New, order.Delivered},
		{order.Confirmed, order.Ready},
		{order.Preparing, order.Delivering},
		{order.Delivered, order.Confirmed},
		{order.Delivering, order.PickedUp},
		{order.Ready, order.New},
	}

	for _, tc := range illegal {
		t.Run("rejects_"+tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			_, err := tc.from.TransitionTo(tc.to)
			assert.ErrorIs(t, err, errs.ErrConflict)
		})
	}
}

func TestStatusCancellation(t *testing.T) {
	t.Run("cancellable from any non-terminal status", func(t *testing.T) {
		for _, from := range []order.Status{
			order.New, order.Confirmed, order.Preparing, order.Ready, order.PickedUp, order.Delivering,
		} {
			got, err := from.TransitionTo(order.Cancelled)
			require.NoError(t, err, "from %s", from)
			assert.Equal(t, order.Cancelled, got)
		}
	})

	t.Run("not cancellable from terminal statuses", func(t *testing.T) {
		for _, from := range []order.Status{order.Delivered, order.Cancelled, order.Failed} {
			_, err := from.TransitionTo(order.Cancelled)
			assert.ErrorIs(t, err, errs.ErrConflict, "from %s", from)
		}
	})
}

func TestStatusFromString(t *testing.T) {
	for _, name := range []string{
		"NEW", "CONFIRMED", "PREPARING", "READY", "PICKED_UP", "DELIVERING", "DELIVERED", "CANCELLED", "FAILED",
	} {
		status, err := order.StatusFromString(name)
		require.NoError(t, err)
		assert.Equal(t, name, status.String())
	}

	_, err := order.StatusFromString("SHIPPED")
	assert.Error(t, err)
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Failed.IsTerminal())
	assert.False(t, order.New.IsTerminal())
	assert.False(t, order.Delivering.IsTerminal())
}
