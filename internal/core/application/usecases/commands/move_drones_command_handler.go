package commands

import (
	"context"
	"log/slog"

	"fooddrone/internal/core/domain/model/delivery"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/events"
	"fooddrone/internal/core/ports"
)

// MoveDronesCommandHandler is the motion sweep. Each tick it advances every
// active flight by one step, moves the drone with it, and publishes the
// telemetry and milestone events derived from the step.
//
// Every flight gets its own transaction: one broken flight logs an error
// and the sweep keeps going, so a single bad row cannot ground the fleet.
// Events are published after the flight's commit; a crash between commit
// and publish means a lost telemetry sample, never a phantom one.
type MoveDronesCommandHandler struct {
	uowFactory  ports.UnitOfWorkFactory
	bus         ports.EventBus
	tickSeconds float64
	logger      *slog.Logger
}

// NewMoveDronesCommandHandler creates the sweep handler for a tick length.
func NewMoveDronesCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	bus ports.EventBus,
	tickSeconds float64,
	logger *slog.Logger,
) MoveDronesCommandHandler {
	return MoveDronesCommandHandler{
		uowFactory:  uowFactory,
		bus:         bus,
		tickSeconds: tickSeconds,
		logger:      logger,
	}
}

// Handle advances all active flights by one tick.
func (h *MoveDronesCommandHandler) Handle(ctx context.Context, cmd MoveDronesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	active, err := h.listActive(ctx)
	if err != nil {
		return err
	}

	for _, flight := range active {
		if err := h.advanceFlight(ctx, flight.ID()); err != nil {
			h.logger.ErrorContext(ctx, "flight tick failed",
				"orderId", flight.OrderID().String(),
				"deliveryId", flight.ID().String(),
				"error", err)
		}
	}
	return nil
}

func (h *MoveDronesCommandHandler) listActive(ctx context.Context) ([]*delivery.Delivery, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.DeliveryRepository().GetAllActive(ctx)
}

// advanceFlight moves one flight by one tick inside its own transaction
// and publishes the resulting events after commit.
func (h *MoveDronesCommandHandler) advanceFlight(ctx context.Context, deliveryID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	flight, err := uow.DeliveryRepository().Get(ctx, deliveryID)
	if err != nil {
		return err
	}
	if !flight.IsActive() {
		return nil
	}

	vehicle, err := uow.DroneRepository().Get(ctx, flight.DroneID())
	if err != nil {
		return err
	}

	progress, err := flight.Advance(h.tickSeconds)
	if err != nil {
		return err
	}
	if err := vehicle.MoveTo(progress.Position); err != nil {
		return err
	}
	if progress.Completed {
		if err := vehicle.RecordDelivery(flight.LegTotalKm()); err != nil {
			return err
		}
		if err := vehicle.MarkAvailable(); err != nil {
			return err
		}
	}

	if err := uow.DeliveryRepository().Update(ctx, flight); err != nil {
		return err
	}
	if err := uow.DroneRepository().Update(ctx, vehicle); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.publishProgress(ctx, flight, progress)
	return nil
}

// publishProgress emits the tick's telemetry and milestone events. Publish
// failures are logged; the flight state is already committed and the next
// tick will refresh every consumer anyway.
func (h *MoveDronesCommandHandler) publishProgress(ctx context.Context, flight *delivery.Delivery, progress delivery.Progress) {
	orderID := flight.OrderID().String()
	droneCode := flight.DroneCode()

	sample := events.DroneLocationUpdate{
		OrderID:                 orderID,
		DroneID:                 droneCode,
		Status:                  progress.Status.String(),
		CurrentLat:              progress.Position.Lat(),
		CurrentLng:              progress.Position.Lng(),
		DistanceRemaining:       progress.DistanceRemainingKm,
		CurrentSpeed:            flight.SpeedKmh(),
		EstimatedArrivalSeconds: progress.EstimatedArrivalSeconds,
	}

	// Plain telemetry goes out only on ticks without a leg transition; the
	// pickup and completion ticks are announced by their own events.
	if !progress.PickedUp && !progress.Completed {
		h.tryPublish(ctx, events.TopicDroneLocationUpdate, sample, orderID)
	}

	if progress.ReachedHalfway {
		halfway := sample
		halfway.Status = events.StatusHalfway
		h.tryPublish(ctx, events.TopicDroneLocationUpdate, halfway, orderID)
	}

	if progress.PickedUp {
		h.tryPublish(ctx, events.TopicOrderPickedUp, events.OrderPickedUp{
			OrderID: orderID,
			DroneID: droneCode,
		}, orderID)
		h.tryPublish(ctx, events.TopicOrderDelivering, events.OrderDelivering{
			OrderID:          orderID,
			DroneID:          droneCode,
			CurrentLat:       progress.Position.Lat(),
			CurrentLng:       progress.Position.Lng(),
			EstimatedMinutes: float64(progress.EstimatedArrivalSeconds) / 60.0,
		}, orderID)
	}

	if progress.Completed {
		h.tryPublish(ctx, events.TopicOrderCompleted, events.OrderCompleted{
			OrderID:     orderID,
			DroneID:     droneCode,
			CompletedAt: *flight.CompletedAt(),
			DeliveryLat: progress.Position.Lat(),
			DeliveryLng: progress.Position.Lng(),
		}, orderID)
	}
}

func (h *MoveDronesCommandHandler) tryPublish(ctx context.Context, topic string, event any, orderID string) {
	if err := publish(ctx, h.bus, topic, event); err != nil {
		h.logger.ErrorContext(ctx, "event publish failed",
			"topic", topic, "orderId", orderID, "error", err)
	}
}
