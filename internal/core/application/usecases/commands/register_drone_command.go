package commands

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"
)

var ErrRegisterDroneCommandIsNotConstructed = errors.New(
	"RegisterDroneCommand must be created via NewRegisterDroneCommand constructor")

// RegisterDroneCommand adds a new drone to the fleet at a home location.
type RegisterDroneCommand struct {
	droneID kernel.UUID
	code    string
	home    kernel.GeoPoint

	isConstructed bool
}

// NewRegisterDroneCommand validates and creates the registration command.
func NewRegisterDroneCommand(droneID kernel.UUID, code string, home kernel.GeoPoint) (RegisterDroneCommand, error) {
	if err := droneID.Validate(); err != nil {
		return RegisterDroneCommand{}, err
	}
	if code == "" {
		return RegisterDroneCommand{}, errs.NewValueIsRequiredError("code")
	}

	return RegisterDroneCommand{
		droneID:       droneID,
		code:          code,
		home:          home,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDroneCommand) Validate() error {
	if !c.isConstructed {
		return ErrRegisterDroneCommandIsNotConstructed
	}
	return nil
}

// DroneID returns the identifier assigned to the new drone.
func (c RegisterDroneCommand) DroneID() kernel.UUID { return c.droneID }

// Code returns the human-facing drone code.
func (c RegisterDroneCommand) Code() string { return c.code }

// Home returns the registration location.
func (c RegisterDroneCommand) Home() kernel.GeoPoint { return c.home }
