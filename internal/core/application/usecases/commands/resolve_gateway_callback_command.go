package commands

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"
)

var ErrResolveGatewayCallbackCommandIsNotConstructed = errors.New(
	"ResolveGatewayCallbackCommand must be created via NewResolveGatewayCallbackCommand constructor")

// ResolveGatewayCallbackCommand applies the payment gateway's asynchronous
// confirmation for an order's pending payment.
type ResolveGatewayCallbackCommand struct {
	orderID       kernel.UUID
	requestID     string
	resultCode    int
	transactionID string
	message       string

	isConstructed bool
}

// NewResolveGatewayCallbackCommand validates and creates a callback command.
func NewResolveGatewayCallbackCommand(
	orderID kernel.UUID,
	requestID string,
	resultCode int,
	transactionID, message string,
) (ResolveGatewayCallbackCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ResolveGatewayCallbackCommand{}, err
	}
	if requestID == "" {
		return ResolveGatewayCallbackCommand{}, errs.NewValueIsRequiredError("requestId")
	}

	return ResolveGatewayCallbackCommand{
		orderID:       orderID,
		requestID:     requestID,
		resultCode:    resultCode,
		transactionID: transactionID,
		message:       message,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveGatewayCallbackCommand) Validate() error {
	if !c.isConstructed {
		return ErrResolveGatewayCallbackCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the order whose payment the callback resolves.
func (c ResolveGatewayCallbackCommand) OrderID() kernel.UUID { return c.orderID }

// RequestID returns the gateway's correlation identifier.
func (c ResolveGatewayCallbackCommand) RequestID() string { return c.requestID }

// ResultCode returns the gateway result code; zero means success.
func (c ResolveGatewayCallbackCommand) ResultCode() int { return c.resultCode }

// TransactionID returns the gateway transaction identifier, if any.
func (c ResolveGatewayCallbackCommand) TransactionID() string { return c.transactionID }

// Message returns the gateway's human-readable result message.
func (c ResolveGatewayCallbackCommand) Message() string { return c.message }
