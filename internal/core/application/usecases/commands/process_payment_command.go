package commands

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/payment"
	"fooddrone/internal/pkg/errs"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor")

// ProcessPaymentCommand charges a newly created order. It is built from the
// order-created event by the bus subscription.
type ProcessPaymentCommand struct {
	orderID kernel.UUID
	amount  float64
	method  payment.Method

	isConstructed bool
}

// NewProcessPaymentCommand validates and creates a payment command.
func NewProcessPaymentCommand(orderID kernel.UUID, amount float64, method payment.Method) (ProcessPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ProcessPaymentCommand{}, err
	}
	if amount <= 0 {
		return ProcessPaymentCommand{}, errs.NewValueIsInvalidError("amount")
	}

	return ProcessPaymentCommand{
		orderID:       orderID,
		amount:        amount,
		method:        method,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	if !c.isConstructed {
		return ErrProcessPaymentCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the charged order's identifier.
func (c ProcessPaymentCommand) OrderID() kernel.UUID { return c.orderID }

// Amount returns the amount to charge.
func (c ProcessPaymentCommand) Amount() float64 { return c.amount }

// Method returns the payment method.
func (c ProcessPaymentCommand) Method() payment.Method { return c.method }
