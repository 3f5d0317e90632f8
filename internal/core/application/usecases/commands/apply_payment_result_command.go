package commands

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/payment"
)

var ErrApplyPaymentResultCommandIsNotConstructed = errors.New(
	"ApplyPaymentResultCommand must be created via NewApplyPaymentResultCommand constructor")

// ApplyPaymentResultCommand projects a payment outcome onto the order. It
// is built from the payment-processed event by the bus subscription.
type ApplyPaymentResultCommand struct {
	orderID kernel.UUID
	status  payment.Status
	message string

	isConstructed bool
}

// NewApplyPaymentResultCommand validates and creates the projection command.
func NewApplyPaymentResultCommand(orderID kernel.UUID, status payment.Status, message string) (ApplyPaymentResultCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ApplyPaymentResultCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return ApplyPaymentResultCommand{}, err
	}

	return ApplyPaymentResultCommand{
		orderID:       orderID,
		status:        status,
		message:       message,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyPaymentResultCommand) Validate() error {
	if !c.isConstructed {
		return ErrApplyPaymentResultCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the affected order's identifier.
func (c ApplyPaymentResultCommand) OrderID() kernel.UUID { return c.orderID }

// Status returns the reported payment status.
func (c ApplyPaymentResultCommand) Status() payment.Status { return c.status }

// Message returns the human-readable outcome message.
func (c ApplyPaymentResultCommand) Message() string { return c.message }
