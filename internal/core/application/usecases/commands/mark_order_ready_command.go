package commands

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor")

// MarkOrderReadyCommand records the kitchen finishing an order. This is the
// single place the order-ready event is emitted from.
type MarkOrderReadyCommand struct {
	orderID kernel.UUID

	isConstructed bool
}

// NewMarkOrderReadyCommand validates and creates the command.
func NewMarkOrderReadyCommand(orderID kernel.UUID) (MarkOrderReadyCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return MarkOrderReadyCommand{orderID: orderID, isConstructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderReadyCommand) Validate() error {
	if !c.isConstructed {
		return ErrMarkOrderReadyCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the finished order's identifier.
func (c MarkOrderReadyCommand) OrderID() kernel.UUID { return c.orderID }
