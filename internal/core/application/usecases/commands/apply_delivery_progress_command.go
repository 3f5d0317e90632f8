package commands

import (
	"errors"
	"time"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"
)

var ErrApplyDeliveryProgressCommandIsNotConstructed = errors.New(
	"ApplyDeliveryProgressCommand must be created via NewApplyDeliveryProgressCommand constructor")

// ProgressStage identifies which delivery milestone is being projected
// onto the order.
type ProgressStage string

const (
	StagePickedUp   ProgressStage = "PICKED_UP"
	StageDelivering ProgressStage = "DELIVERING"
	StageCompleted  ProgressStage = "COMPLETED"
)

// ApplyDeliveryProgressCommand projects a delivery milestone onto the
// order. It is built from the pickup, delivering and completed events by
// the bus subscriptions.
type ApplyDeliveryProgressCommand struct {
	orderID     kernel.UUID
	droneCode   string
	stage       ProgressStage
	completedAt time.Time

	isConstructed bool
}

// NewApplyDeliveryProgressCommand validates and creates the projection
// command. The completion timestamp is only meaningful for the completed
// stage; other stages pass the zero value.
func NewApplyDeliveryProgressCommand(
	orderID kernel.UUID,
	droneCode string,
	stage ProgressStage,
	completedAt time.Time,
) (ApplyDeliveryProgressCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ApplyDeliveryProgressCommand{}, err
	}
	if droneCode == "" {
		return ApplyDeliveryProgressCommand{}, errs.NewValueIsRequiredError("droneCode")
	}
	switch stage {
	case StagePickedUp, StageDelivering, StageCompleted:
	default:
		return ApplyDeliveryProgressCommand{}, errs.NewValueIsInvalidError("stage")
	}

	return ApplyDeliveryProgressCommand{
		orderID:       orderID,
		droneCode:     droneCode,
		stage:         stage,
		completedAt:   completedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyDeliveryProgressCommand) Validate() error {
	if !c.isConstructed {
		return ErrApplyDeliveryProgressCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the affected order's identifier.
func (c ApplyDeliveryProgressCommand) OrderID() kernel.UUID { return c.orderID }

// DroneCode returns the delivering drone's code.
func (c ApplyDeliveryProgressCommand) DroneCode() string { return c.droneCode }

// Stage returns the projected milestone.
func (c ApplyDeliveryProgressCommand) Stage() ProgressStage { return c.stage }

// CompletedAt returns the delivery timestamp for the completed stage.
func (c ApplyDeliveryProgressCommand) CompletedAt() time.Time { return c.completedAt }
