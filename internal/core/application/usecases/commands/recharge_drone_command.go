package commands

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
)

var ErrRechargeDroneCommandIsNotConstructed = errors.New(
	"RechargeDroneCommand must be created via NewRechargeDroneCommand constructor")

// RechargeDroneCommand refills a drone's battery and returns it to the pool.
type RechargeDroneCommand struct {
	droneID kernel.UUID

	isConstructed bool
}

// NewRechargeDroneCommand validates and creates the recharge command.
func NewRechargeDroneCommand(droneID kernel.UUID) (RechargeDroneCommand, error) {
	if err := droneID.Validate(); err != nil {
		return RechargeDroneCommand{}, err
	}

	return RechargeDroneCommand{droneID: droneID, isConstructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c RechargeDroneCommand) Validate() error {
	if !c.isConstructed {
		return ErrRechargeDroneCommandIsNotConstructed
	}
	return nil
}

// DroneID returns the recharged drone's identifier.
func (c RechargeDroneCommand) DroneID() kernel.UUID { return c.droneID }
