package services_test

import (
	"testing"
	"time"

	"fooddrone/internal/core/domain/model/drone"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func droneAt(t *testing.T, code string, lat, lng float64, status drone.Status, battery int) *drone.Drone {
	t.Helper()

	loc, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)

	d, err := drone.RestoreDrone(
		kernel.NewUUID(), code, status, battery, loc,
		drone.DefaultSpeedKmh, 0, 0, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return d
}

func TestDispatch(t *testing.T) {
	dispatcher := services.NewDispatcher()

	pickup, err := kernel.NewGeoPoint(10.7769, 106.7009)
	require.NoError(t, err)

	t.Run("picks the nearest dispatchable drone", func(t *testing.T) {
		far := droneAt(t, "DRONE-FAR00001", 10.9000, 106.9000, drone.StatusAvailable, 100)
		near := droneAt(t, "DRONE-NEAR0001", 10.7800, 106.7050, drone.StatusAvailable, 100)

		got, err := dispatcher.Dispatch(pickup, []*drone.Drone{far, near})
		require.NoError(t, err)
		assert.Equal(t, near.Code(), got.Code())
	})

	t.Run("skips busy and low-battery drones", func(t *testing.T) {
		busy := droneAt(t, "DRONE-BUSY0001", 10.7770, 106.7010, drone.StatusBusy, 100)
		drained := droneAt(t, "DRONE-DRAIN001", 10.7771, 106.7011, drone.StatusAvailable, drone.MinDispatchBattery-1)
		ok := droneAt(t, "DRONE-OK000001", 10.8500, 106.8000, drone.StatusAvailable, drone.MinDispatchBattery)

		got, err := dispatcher.Dispatch(pickup, []*drone.Drone{busy, drained, ok})
		require.NoError(t, err)
		assert.Equal(t, ok.Code(), got.Code())
	})

	t.Run("empty fleet", func(t *testing.T) {
		_, err := dispatcher.Dispatch(pickup, nil)
		assert.ErrorIs(t, err, services.ErrNoAvailableDrone)
	})

	t.Run("no dispatchable candidate", func(t *testing.T) {
		charging := droneAt(t, "DRONE-CHRG0001", 10.7770, 106.7010, drone.StatusCharging, 100)

		_, err := dispatcher.Dispatch(pickup, []*drone.Drone{charging})
		assert.ErrorIs(t, err, services.ErrNoAvailableDrone)
	})
}
