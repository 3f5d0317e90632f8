package commands

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/restaurant"
)

var ErrAcceptRestaurantOrderCommandIsNotConstructed = errors.New(
	"AcceptRestaurantOrderCommand must be created via NewAcceptRestaurantOrderCommand constructor")

// AcceptRestaurantOrderCommand opens a kitchen ticket for a paid order. It
// is built from the order-paid event by the bus subscription.
type AcceptRestaurantOrderCommand struct {
	orderID      kernel.UUID
	restaurantID kernel.UUID
	contact      restaurant.Contact

	isConstructed bool
}

// NewAcceptRestaurantOrderCommand validates and creates the command.
func NewAcceptRestaurantOrderCommand(
	orderID, restaurantID kernel.UUID,
	contact restaurant.Contact,
) (AcceptRestaurantOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), restaurantID.Validate()); err != nil {
		return AcceptRestaurantOrderCommand{}, err
	}

	return AcceptRestaurantOrderCommand{
		orderID:       orderID,
		restaurantID:  restaurantID,
		contact:       contact,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptRestaurantOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrAcceptRestaurantOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the paid order's identifier.
func (c AcceptRestaurantOrderCommand) OrderID() kernel.UUID { return c.orderID }

// RestaurantID returns the cooking restaurant's identifier.
func (c AcceptRestaurantOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// Contact returns the customer contact snapshot for the ticket.
func (c AcceptRestaurantOrderCommand) Contact() restaurant.Contact { return c.contact }
