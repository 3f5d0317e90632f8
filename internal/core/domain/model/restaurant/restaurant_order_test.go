package restaurant_test

import (
	"testing"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/restaurant"
	"fooddrone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContact() restaurant.Contact {
	return restaurant.Contact{
		FullName: "Nguyen Van A",
		Phone:    "+84901234567",
		Address:  "123 Le Loi, District 1",
	}
}

func newTicket(t *testing.T) *restaurant.RestaurantOrder {
	t.Helper()

	r, err := restaurant.NewRestaurantOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testContact())
	require.NoError(t, err)
	return r
}

func TestNewRestaurantOrder(t *testing.T) {
	r := newTicket(t)

	assert.Equal(t, restaurant.StatusPendingConfirmation, r.Status())
	assert.Equal(t, testContact(), r.Contact())
	assert.Nil(t, r.ConfirmedAt())
	assert.Nil(t, r.ReadyAt())
}

func TestConfirm(t *testing.T) {
	t.Run("moves the ticket into preparation", func(t *testing.T) {
		r := newTicket(t)

		require.NoError(t, r.Confirm())

		assert.Equal(t, restaurant.StatusPreparing, r.Status())
		assert.NotNil(t, r.ConfirmedAt())
	})

	t.Run("second confirm is a conflict", func(t *testing.T) {
		r := newTicket(t)
		require.NoError(t, r.Confirm())

		assert.ErrorIs(t, r.Confirm(), errs.ErrConflict)
	})
}

func TestMarkReady(t *testing.T) {
	t.Run("finishes a confirmed ticket", func(t *testing.T) {
		r := newTicket(t)
		require.NoError(t, r.Confirm())

		require.NoError(t, r.MarkReady())

		assert.Equal(t, restaurant.StatusReady, r.Status())
		assert.NotNil(t, r.ReadyAt())
	})

	t.Run("unconfirmed ticket cannot be ready", func(t *testing.T) {
		r := newTicket(t)

		assert.ErrorIs(t, r.MarkReady(), errs.ErrConflict)
	})

	t.Run("second mark ready is a conflict", func(t *testing.T) {
		r := newTicket(t)
		require.NoError(t, r.Confirm())
		require.NoError(t, r.MarkReady())

		assert.ErrorIs(t, r.MarkReady(), errs.ErrConflict)
	})
}

func TestRestaurantOrderZeroValue(t *testing.T) {
	var r restaurant.RestaurantOrder
	assert.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantOrderIsNotConstructed)
}
