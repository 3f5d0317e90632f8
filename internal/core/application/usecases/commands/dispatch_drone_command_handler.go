package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddrone/internal/core/domain/model/delivery"
	"fooddrone/internal/core/domain/model/drone"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/services"
	"fooddrone/internal/core/ports"
	"fooddrone/internal/pkg/errs"
)

// DispatchDroneCommandHandler opens a flight for a ready order. Both
// addresses are geocoded once here and cached on the flight record.
//
// Drone selection runs against a snapshot of the fleet, so two dispatchers
// can pick the same drone. The claim is a compare-and-set on the drone row;
// the loser falls through to the next candidate. A redelivered order-ready
// event finds the existing flight and does nothing.
type DispatchDroneCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher services.Dispatcher
	logger     *slog.Logger
}

// NewDispatchDroneCommandHandler creates a handler for drone dispatch.
func NewDispatchDroneCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher services.Dispatcher,
	logger *slog.Logger,
) DispatchDroneCommandHandler {
	return DispatchDroneCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes the dispatch command.
func (h *DispatchDroneCommandHandler) Handle(ctx context.Context, cmd DispatchDroneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveries := uow.DeliveryRepository()

	existing, err := deliveries.GetByOrderID(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		h.logger.InfoContext(ctx, "flight already open, skipping",
			"orderId", cmd.OrderID().String())
		return nil
	}

	pickup := kernel.GeocodeAddress(cmd.RestaurantAddress())
	dropoff := kernel.GeocodeAddress(cmd.DeliveryAddress())

	claimed, err := h.claimDrone(ctx, uow.DroneRepository(), pickup)
	if err != nil {
		return err
	}

	flight, err := delivery.NewDelivery(
		kernel.NewUUID(), cmd.OrderID(), claimed.ID(), claimed.Code(),
		claimed.Location(), pickup, dropoff, claimed.SpeedKmh(),
	)
	if err != nil {
		return err
	}

	if err := deliveries.Add(ctx, flight); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "drone dispatched",
		"orderId", cmd.OrderID().String(), "drone", claimed.Code())
	return nil
}

// claimDrone selects and claims a drone, retrying with the next candidate
// when a concurrent dispatcher wins the row.
func (h *DispatchDroneCommandHandler) claimDrone(
	ctx context.Context,
	drones ports.DroneRepository,
	pickup kernel.GeoPoint,
) (*drone.Drone, error) {
	candidates, err := drones.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	for len(candidates) > 0 {
		selected, err := h.dispatcher.Dispatch(pickup, candidates)
		if err != nil {
			return nil, err
		}

		won, err := drones.TryClaim(ctx, selected.ID())
		if err != nil {
			return nil, err
		}
		if won {
			return selected, nil
		}

		h.logger.InfoContext(ctx, "lost drone claim race, trying next candidate",
			"drone", selected.Code())
		candidates = withoutDrone(candidates, selected.ID())
	}

	return nil, services.ErrNoAvailableDrone
}

func withoutDrone(candidates []*drone.Drone, id kernel.UUID) []*drone.Drone {
	remaining := make([]*drone.Drone, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.ID().IsEqual(id) {
			remaining = append(remaining, candidate)
		}
	}
	return remaining
}
