package drone_test

import (
	"testing"
	"time"

	"fooddrone/internal/core/domain/model/drone"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homePoint(t *testing.T) kernel.GeoPoint {
	t.Helper()

	p, err := kernel.NewGeoPoint(10.7769, 106.7009)
	require.NoError(t, err)
	return p
}

func newTestDrone(t *testing.T) *drone.Drone {
	t.Helper()

	d, err := drone.NewDrone(kernel.NewUUID(), "DRONE-AB12CD34", homePoint(t))
	require.NoError(t, err)
	return d
}

func TestNewDrone(t *testing.T) {
	t.Run("registers available and fully charged", func(t *testing.T) {
		d := newTestDrone(t)

		assert.Equal(t, drone.StatusAvailable, d.Status())
		assert.Equal(t, 100, d.Battery())
		assert.InDelta(t, drone.DefaultSpeedKmh, d.SpeedKmh(), 1e-9)
		assert.True(t, d.IsAvailableForDispatch())
	})

	t.Run("requires a code", func(t *testing.T) {
		_, err := drone.NewDrone(kernel.NewUUID(), "", homePoint(t))
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestIsAvailableForDispatch(t *testing.T) {
	t.Run("low battery disqualifies an available drone", func(t *testing.T) {
		d, err := drone.RestoreDrone(
			kernel.NewUUID(), "DRONE-LOW00001", drone.StatusAvailable,
			drone.MinDispatchBattery-1, homePoint(t), drone.DefaultSpeedKmh,
			0, 0, time.Now(), time.Now(),
		)
		require.NoError(t, err)

		assert.False(t, d.IsAvailableForDispatch())
	})

	t.Run("busy drone is not dispatchable", func(t *testing.T) {
		d := newTestDrone(t)
		require.NoError(t, d.MarkBusy())

		assert.False(t, d.IsAvailableForDispatch())
	})
}

func TestMarkBusy(t *testing.T) {
	d := newTestDrone(t)

	require.NoError(t, d.MarkBusy())
	assert.Equal(t, drone.StatusBusy, d.Status())

	assert.ErrorIs(t, d.MarkBusy(), errs.ErrConflict)
}

func TestMoveTo(t *testing.T) {
	d := newTestDrone(t)
	dest, err := kernel.NewGeoPoint(10.8000, 106.7500)
	require.NoError(t, err)

	require.NoError(t, d.MoveTo(dest))

	// Moving only samples the position; battery and distance are charged
	// per completed delivery, not per position update.
	assert.True(t, d.Location().IsEqual(dest))
	assert.Equal(t, 100, d.Battery())
	assert.InDelta(t, 0, d.TotalDistanceKm(), 1e-9)
}

func TestRecharge(t *testing.T) {
	t.Run("refills and returns the drone to the pool", func(t *testing.T) {
		d := newTestDrone(t)
		require.NoError(t, d.RecordDelivery(5.947))
		require.NoError(t, d.SendToMaintenance())

		require.NoError(t, d.Recharge())

		assert.Equal(t, 100, d.Battery())
		assert.Equal(t, drone.StatusAvailable, d.Status())
	})

	t.Run("busy drone cannot recharge", func(t *testing.T) {
		d := newTestDrone(t)
		require.NoError(t, d.MarkBusy())

		assert.ErrorIs(t, d.Recharge(), errs.ErrConflict)
	})
}

func TestRecordDelivery(t *testing.T) {
	t.Run("charges battery and distance per delivery leg", func(t *testing.T) {
		d := newTestDrone(t)

		// A 5.947 km leg drains ceil(5.947 * 2) = 12 percent.
		require.NoError(t, d.RecordDelivery(5.947))

		assert.Equal(t, 1, d.TotalDeliveries())
		assert.Equal(t, 100-12, d.Battery())
		assert.InDelta(t, 5.947, d.TotalDistanceKm(), 1e-9)
	})

	t.Run("accumulates across deliveries", func(t *testing.T) {
		d := newTestDrone(t)

		require.NoError(t, d.RecordDelivery(2.0))
		require.NoError(t, d.RecordDelivery(3.5))

		assert.Equal(t, 2, d.TotalDeliveries())
		assert.Equal(t, 100-4-7, d.Battery())
		assert.InDelta(t, 5.5, d.TotalDistanceKm(), 1e-9)
	})

	t.Run("clamps battery at zero", func(t *testing.T) {
		d, err := drone.RestoreDrone(
			kernel.NewUUID(), "DRONE-EMPTY001", drone.StatusBusy,
			3, homePoint(t), drone.DefaultSpeedKmh, 0, 0,
			time.Now(), time.Now(),
		)
		require.NoError(t, err)

		require.NoError(t, d.RecordDelivery(6.0))
		assert.Equal(t, 0, d.Battery())
	})

	t.Run("rejects a negative leg", func(t *testing.T) {
		d := newTestDrone(t)
		assert.ErrorIs(t, d.RecordDelivery(-1), errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreDroneRejectsBatteryOutOfRange(t *testing.T) {
	_, err := drone.RestoreDrone(
		kernel.NewUUID(), "DRONE-BAD00001", drone.StatusAvailable,
		120, homePoint(t), drone.DefaultSpeedKmh, 0, 0,
		time.Now(), time.Now(),
	)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestDroneZeroValue(t *testing.T) {
	var d drone.Drone
	assert.ErrorIs(t, d.Validate(), drone.ErrDroneIsNotConstructed)
}
