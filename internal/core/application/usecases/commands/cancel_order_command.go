package commands

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor")

// CancelOrderCommand aborts an order on the customer's request.
type CancelOrderCommand struct {
	orderID kernel.UUID
	userID  kernel.UUID

	isConstructed bool
}

// NewCancelOrderCommand validates and creates the cancellation command.
func NewCancelOrderCommand(orderID, userID kernel.UUID) (CancelOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{orderID: orderID, userID: userID, isConstructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrCancelOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the cancelled order's identifier.
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

// UserID returns the requesting user's identifier, checked for ownership.
func (c CancelOrderCommand) UserID() kernel.UUID { return c.userID }
