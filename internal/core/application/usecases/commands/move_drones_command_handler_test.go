package commands_test

import (
	"math"
	"testing"
	"time"

	"fooddrone/internal/core/application/usecases/commands"
	"fooddrone/internal/core/domain/model/delivery"
	"fooddrone/internal/core/domain/model/drone"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/events"
	"fooddrone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sweepTick = 5.0

func geoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()

	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

// flightAtRestaurant opens a flight whose drone already hovers over the
// restaurant, so the first tick is the pickup tick.
func flightAtRestaurant(t *testing.T, vehicle *drone.Drone) *delivery.Delivery {
	t.Helper()

	restaurant := geoPoint(t, 10.7769, 106.7009)
	customer := geoPoint(t, 10.8000, 106.7500)

	f, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), vehicle.ID(), vehicle.Code(),
		restaurant, restaurant, customer, vehicle.SpeedKmh(),
	)
	require.NoError(t, err)
	return f
}

func busyDrone(t *testing.T) *drone.Drone {
	t.Helper()

	d, err := drone.RestoreDrone(
		kernel.NewUUID(), "DRONE-AB12CD34", drone.StatusBusy, 100,
		geoPoint(t, 10.7769, 106.7009), drone.DefaultSpeedKmh, 0, 0,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return d
}

func TestMoveDronesCommandHandler(t *testing.T) {
	ctx := t.Context()

	newCommand := func(t *testing.T) commands.MoveDronesCommand {
		cmd, err := commands.NewMoveDronesCommand()
		require.NoError(t, err)
		return cmd
	}

	t.Run("pickup tick publishes pickup and delivering, no plain telemetry", func(t *testing.T) {
		vehicle := busyDrone(t)
		flight := flightAtRestaurant(t, vehicle)

		uow := NewMockUnitOfWork()
		uow.On("Begin", ctx).Return(nil).Twice() // list + advance
		uow.On("Commit", ctx).Return(nil).Once()
		uow.Deliveries.On("GetAllActive", ctx).Return([]*delivery.Delivery{flight}, nil).Once()
		uow.Deliveries.On("Get", ctx, flight.ID()).Return(flight, nil).Once()
		uow.Deliveries.On("Update", ctx, flight).Return(nil).Once()
		uow.Drones.On("Get", ctx, vehicle.ID()).Return(vehicle, nil).Once()
		uow.Drones.On("Update", ctx, vehicle).Return(nil).Once()

		bus := new(MockEventBus)
		bus.On("Publish", ctx, events.TopicOrderPickedUp, mock.Anything).Return(nil).Once()
		bus.On("Publish", ctx, events.TopicOrderDelivering, mock.Anything).Return(nil).Once()

		h := commands.NewMoveDronesCommandHandler(
			&MockUnitOfWorkFactory{UoW: uow}, bus, sweepTick, discardLogger(),
		)
		require.NoError(t, h.Handle(ctx, newCommand(t)))

		bus.AssertExpectations(t)
		bus.AssertNotCalled(t, "Publish", ctx, events.TopicDroneLocationUpdate, mock.Anything)
		assert.Equal(t, delivery.Delivering, flight.Status())
	})

	t.Run("mid-leg tick publishes telemetry only", func(t *testing.T) {
		vehicle := busyDrone(t)
		restaurant := geoPoint(t, 10.7769, 106.7009)
		customer := geoPoint(t, 10.8000, 106.7500)
		now := time.Now()
		flight, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), vehicle.ID(), vehicle.Code(),
			delivery.Delivering, restaurant, customer, restaurant,
			vehicle.SpeedKmh(), restaurant.DistanceTo(customer), false,
			nil, &now, nil, now, now,
		)
		require.NoError(t, err)

		uow := NewMockUnitOfWork()
		uow.On("Begin", ctx).Return(nil).Twice()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.Deliveries.On("GetAllActive", ctx).Return([]*delivery.Delivery{flight}, nil).Once()
		uow.Deliveries.On("Get", ctx, flight.ID()).Return(flight, nil).Once()
		uow.Deliveries.On("Update", ctx, flight).Return(nil).Once()
		uow.Drones.On("Get", ctx, vehicle.ID()).Return(vehicle, nil).Once()
		uow.Drones.On("Update", ctx, vehicle).Return(nil).Once()

		bus := new(MockEventBus)
		bus.On("Publish", ctx, events.TopicDroneLocationUpdate, mock.Anything).Return(nil).Once()

		h := commands.NewMoveDronesCommandHandler(
			&MockUnitOfWorkFactory{UoW: uow}, bus, sweepTick, discardLogger(),
		)
		require.NoError(t, h.Handle(ctx, newCommand(t)))

		bus.AssertExpectations(t)
		assert.Equal(t, delivery.Delivering, flight.Status())
	})

	t.Run("final tick completes the flight and frees the drone", func(t *testing.T) {
		vehicle := busyDrone(t)
		restaurant := geoPoint(t, 10.7769, 106.7009)
		customer := geoPoint(t, 10.7771, 106.7011) // ~30 m away
		now := time.Now()
		flight, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), vehicle.ID(), vehicle.Code(),
			delivery.Delivering, restaurant, customer, restaurant,
			vehicle.SpeedKmh(), restaurant.DistanceTo(customer), true,
			nil, &now, nil, now, now,
		)
		require.NoError(t, err)

		uow := NewMockUnitOfWork()
		uow.On("Begin", ctx).Return(nil).Twice()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.Deliveries.On("GetAllActive", ctx).Return([]*delivery.Delivery{flight}, nil).Once()
		uow.Deliveries.On("Get", ctx, flight.ID()).Return(flight, nil).Once()
		uow.Deliveries.On("Update", ctx, flight).Return(nil).Once()
		legTotal := flight.LegTotalKm()
		uow.Drones.On("Get", ctx, vehicle.ID()).Return(vehicle, nil).Once()
		uow.Drones.On("Update", ctx, mock.MatchedBy(func(d *drone.Drone) bool {
			// Battery and distance are charged once, for the delivering
			// leg total, on the completion tick.
			return d.Status() == drone.StatusAvailable &&
				d.TotalDeliveries() == 1 &&
				d.Battery() == 100-int(math.Ceil(legTotal*drone.BatteryDrainPerKm)) &&
				math.Abs(d.TotalDistanceKm()-legTotal) < 1e-9
		})).Return(nil).Once()

		bus := new(MockEventBus)
		bus.On("Publish", ctx, events.TopicOrderCompleted, mock.Anything).Return(nil).Once()

		h := commands.NewMoveDronesCommandHandler(
			&MockUnitOfWorkFactory{UoW: uow}, bus, sweepTick, discardLogger(),
		)
		require.NoError(t, h.Handle(ctx, newCommand(t)))

		bus.AssertExpectations(t)
		bus.AssertNotCalled(t, "Publish", ctx, events.TopicDroneLocationUpdate, mock.Anything)
		assert.Equal(t, delivery.Completed, flight.Status())
	})

	t.Run("one broken flight does not stop the sweep", func(t *testing.T) {
		vehicle := busyDrone(t)
		broken := flightAtRestaurant(t, vehicle)
		healthy := flightAtRestaurant(t, vehicle)

		uow := NewMockUnitOfWork()
		uow.On("Begin", ctx).Return(nil).Times(3)
		uow.On("Commit", ctx).Return(nil).Once()
		uow.Deliveries.On("GetAllActive", ctx).Return([]*delivery.Delivery{broken, healthy}, nil).Once()
		uow.Deliveries.On("Get", ctx, broken.ID()).
			Return(nil, errs.NewObjectNotFoundError("deliveryId", broken.ID().String())).Once()
		uow.Deliveries.On("Get", ctx, healthy.ID()).Return(healthy, nil).Once()
		uow.Deliveries.On("Update", ctx, healthy).Return(nil).Once()
		uow.Drones.On("Get", ctx, vehicle.ID()).Return(vehicle, nil).Once()
		uow.Drones.On("Update", ctx, vehicle).Return(nil).Once()

		bus := new(MockEventBus)
		bus.On("Publish", ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil)

		h := commands.NewMoveDronesCommandHandler(
			&MockUnitOfWorkFactory{UoW: uow}, bus, sweepTick, discardLogger(),
		)
		require.NoError(t, h.Handle(ctx, newCommand(t)))

		uow.Deliveries.AssertExpectations(t)
	})
}
