package commands

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"
)

var ErrDispatchDroneCommandIsNotConstructed = errors.New(
	"DispatchDroneCommand must be created via NewDispatchDroneCommand constructor")

// DispatchDroneCommand assigns a drone to a ready order. It is built from
// the order-ready event, which carries both addresses so dispatch needs no
// further lookups.
type DispatchDroneCommand struct {
	orderID           kernel.UUID
	restaurantAddress string
	deliveryAddress   string

	isConstructed bool
}

// NewDispatchDroneCommand validates and creates the dispatch command.
func NewDispatchDroneCommand(orderID kernel.UUID, restaurantAddress, deliveryAddress string) (DispatchDroneCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DispatchDroneCommand{}, err
	}
	if restaurantAddress == "" {
		return DispatchDroneCommand{}, errs.NewValueIsRequiredError("restaurantAddress")
	}
	if deliveryAddress == "" {
		return DispatchDroneCommand{}, errs.NewValueIsRequiredError("deliveryAddress")
	}

	return DispatchDroneCommand{
		orderID:           orderID,
		restaurantAddress: restaurantAddress,
		deliveryAddress:   deliveryAddress,
		isConstructed:     true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchDroneCommand) Validate() error {
	if !c.isConstructed {
		return ErrDispatchDroneCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the order awaiting pickup.
func (c DispatchDroneCommand) OrderID() kernel.UUID { return c.orderID }

// RestaurantAddress returns the pickup address.
func (c DispatchDroneCommand) RestaurantAddress() string { return c.restaurantAddress }

// DeliveryAddress returns the dropoff address.
func (c DispatchDroneCommand) DeliveryAddress() string { return c.deliveryAddress }
