package commands

import (
	"context"
	"errors"

	"fooddrone/internal/core/domain/model/drone"
	"fooddrone/internal/core/ports"
	"fooddrone/internal/pkg/errs"
)

// RegisterDroneCommandHandler adds a drone to the fleet. Codes are unique;
// registering an existing code is a conflict.
type RegisterDroneCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewRegisterDroneCommandHandler creates a handler for fleet registration.
func NewRegisterDroneCommandHandler(uowFactory ports.UnitOfWorkFactory) RegisterDroneCommandHandler {
	return RegisterDroneCommandHandler{uowFactory: uowFactory}
}

// Handle processes the registration command.
func (h *RegisterDroneCommandHandler) Handle(ctx context.Context, cmd RegisterDroneCommand) error {
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

	existing, err := drones.GetByCode(ctx, cmd.Code())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewConflictError("code")
	}

	vehicle, err := drone.NewDrone(cmd.DroneID(), cmd.Code(), cmd.Home())
	if err != nil {
		return err
	}

	if err := drones.Add(ctx, vehicle); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
