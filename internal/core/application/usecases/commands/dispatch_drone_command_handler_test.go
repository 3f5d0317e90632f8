package commands_test

import (
	"testing"
	"time"

	"fooddrone/internal/core/application/usecases/commands"
	"fooddrone/internal/core/domain/model/delivery"
	"fooddrone/internal/core/domain/model/drone"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/services"
	"fooddrone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func availableDrone(t *testing.T, code string, lat, lng float64) *drone.Drone {
	t.Helper()

	loc, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	d, err := drone.RestoreDrone(
		kernel.NewUUID(), code, drone.StatusAvailable, 100, loc,
		drone.DefaultSpeedKmh, 0, 0, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return d
}

func TestDispatchDroneCommandHandler(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	newCommand := func(t *testing.T) commands.DispatchDroneCommand {
		cmd, err := commands.NewDispatchDroneCommand(
			orderID, "12 Le Loi, District 1", "34 Tran Hung Dao, District 5",
		)
		require.NoError(t, err)
		return cmd
	}

	notFound := errs.NewObjectNotFoundError("orderId", orderID.String())

	t.Run("claims the nearest drone and opens the flight", func(t *testing.T) {
		near := availableDrone(t, "DRONE-NEAR0001", 10.7770, 106.7010)
		far := availableDrone(t, "DRONE-FAR00001", 10.9000, 106.9000)

		uow := NewMockUnitOfWork()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.Deliveries.On("GetByOrderID", ctx, orderID).Return(nil, notFound).Once()
		uow.Drones.On("GetAllAvailable", ctx).Return([]*drone.Drone{near, far}, nil).Once()
		uow.Drones.On("TryClaim", ctx, near.ID()).Return(true, nil).Once()
		uow.Deliveries.On("Add", ctx, mock.MatchedBy(func(f *delivery.Delivery) bool {
			return f.Status() == delivery.PickingUp && f.DroneCode() == near.Code() &&
				f.OrderID().IsEqual(orderID)
		})).Return(nil).Once()

		h := commands.NewDispatchDroneCommandHandler(
			&MockUnitOfWorkFactory{UoW: uow}, services.NewDispatcher(), discardLogger(),
		)
		require.NoError(t, h.Handle(ctx, newCommand(t)))

		uow.Drones.AssertExpectations(t)
		uow.Deliveries.AssertExpectations(t)
	})

	t.Run("lost claim race falls through to the next candidate", func(t *testing.T) {
		first := availableDrone(t, "DRONE-NEAR0001", 10.7770, 106.7010)
		second := availableDrone(t, "DRONE-NEXT0001", 10.7800, 106.7100)

		uow := NewMockUnitOfWork()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.Deliveries.On("GetByOrderID", ctx, orderID).Return(nil, notFound).Once()
		uow.Drones.On("GetAllAvailable", ctx).Return([]*drone.Drone{first, second}, nil).Once()
		uow.Drones.On("TryClaim", ctx, first.ID()).Return(false, nil).Once()
		uow.Drones.On("TryClaim", ctx, second.ID()).Return(true, nil).Once()
		uow.Deliveries.On("Add", ctx, mock.MatchedBy(func(f *delivery.Delivery) bool {
			return f.DroneCode() == second.Code()
		})).Return(nil).Once()

		h := commands.NewDispatchDroneCommandHandler(
			&MockUnitOfWorkFactory{UoW: uow}, services.NewDispatcher(), discardLogger(),
		)
		require.NoError(t, h.Handle(ctx, newCommand(t)))

		uow.Drones.AssertExpectations(t)
	})

	t.Run("no dispatchable drone", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.Deliveries.On("GetByOrderID", ctx, orderID).Return(nil, notFound).Once()
		uow.Drones.On("GetAllAvailable", ctx).Return([]*drone.Drone{}, nil).Once()

		h := commands.NewDispatchDroneCommandHandler(
			&MockUnitOfWorkFactory{UoW: uow}, services.NewDispatcher(), discardLogger(),
		)
		err := h.Handle(ctx, newCommand(t))
		assert.ErrorIs(t, err, services.ErrNoAvailableDrone)
	})

	t.Run("redelivered event finds the flight and skips", func(t *testing.T) {
		existing, err := delivery.NewDelivery(
			kernel.NewUUID(), orderID, kernel.NewUUID(), "DRONE-AB12CD34",
			kernel.GeocodeAddress("a"), kernel.GeocodeAddress("b"), kernel.GeocodeAddress("c"),
			drone.DefaultSpeedKmh,
		)
		require.NoError(t, err)

		uow := NewMockUnitOfWork()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.Deliveries.On("GetByOrderID", ctx, orderID).Return(existing, nil).Once()

		h := commands.NewDispatchDroneCommandHandler(
			&MockUnitOfWorkFactory{UoW: uow}, services.NewDispatcher(), discardLogger(),
		)
		require.NoError(t, h.Handle(ctx, newCommand(t)))

		uow.Deliveries.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		uow.Drones.AssertNotCalled(t, "TryClaim", mock.Anything, mock.Anything)
	})
}
