package commands

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/order"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor")

// UpdateOrderStatusCommand applies a manual status change to an order. The
// requested transition is still validated against the order's state
// machine; this is an operator escape hatch, not a bypass.
type UpdateOrderStatusCommand struct {
	orderID kernel.UUID
	status  order.Status

	isConstructed bool
}

// NewUpdateOrderStatusCommand validates and creates the command.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status order.Status) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{orderID: orderID, status: status, isConstructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateOrderStatusCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the affected order's identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }
