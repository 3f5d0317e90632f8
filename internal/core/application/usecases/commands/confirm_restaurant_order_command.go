package commands

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
)

var ErrConfirmRestaurantOrderCommandIsNotConstructed = errors.New(
	"ConfirmRestaurantOrderCommand must be created via NewConfirmRestaurantOrderCommand constructor")

// ConfirmRestaurantOrderCommand records kitchen staff accepting a ticket
// and starting preparation.
type ConfirmRestaurantOrderCommand struct {
	orderID kernel.UUID

	isConstructed bool
}

// NewConfirmRestaurantOrderCommand validates and creates the command.
func NewConfirmRestaurantOrderCommand(orderID kernel.UUID) (ConfirmRestaurantOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmRestaurantOrderCommand{}, err
	}

	return ConfirmRestaurantOrderCommand{orderID: orderID, isConstructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmRestaurantOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrConfirmRestaurantOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the confirmed order's identifier.
func (c ConfirmRestaurantOrderCommand) OrderID() kernel.UUID { return c.orderID }
