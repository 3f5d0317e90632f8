package commands

import (
	"context"

	"fooddrone/internal/core/ports"
)

// RechargeDroneCommandHandler refills a drone's battery. Busy drones are
// rejected by the aggregate; they recharge after landing.
type RechargeDroneCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewRechargeDroneCommandHandler creates a handler for drone recharging.
func NewRechargeDroneCommandHandler(uowFactory ports.UnitOfWorkFactory) RechargeDroneCommandHandler {
	return RechargeDroneCommandHandler{uowFactory: uowFactory}
}

// Handle processes the recharge command.
func (h *RechargeDroneCommandHandler) Handle(ctx context.Context, cmd RechargeDroneCommand) error {
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

	drones := uow.DroneRepository()

	vehicle, err := drones.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}
	if err := vehicle.Recharge(); err != nil {
		return err
	}
	if err := drones.Update(ctx, vehicle); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
