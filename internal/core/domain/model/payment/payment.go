package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment or RestorePayment factory functions.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Status is the lifecycle state of a payment attempt.
type Status string

const (
	// StatusPending covers both a freshly created attempt and a gateway
	// attempt waiting for the out-of-band callback.
	StatusPending Status = "PENDING"
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%q is not a valid payment status", string(s)))
	}
}

// Method is the payment method chosen at order placement.
type Method string

const (
	// MethodCash is cash on delivery; attempts auto-resolve to success.
	MethodCash Method = "CASH"
	// MethodGateway routes through the external payment gateway and
	// resolves asynchronously via its callback.
	MethodGateway Method = "GATEWAY"
)

// MethodFromString parses a method name, defaulting unknown values to the
// gateway method.
func MethodFromString(s string) Method {
	if strings.EqualFold(s, string(MethodCash)) {
		return MethodCash
	}
	return MethodGateway
}

// GatewayDetails holds the correlation state returned by the external
// payment gateway for an attempt.
type GatewayDetails struct {
	RequestID       string
	ExternalOrderID string
	PayURL          string
	ResultCode      int
	TransactionID   string
	Message         string
}

// Payment is the aggregate owned by the payment processor. There is at most
// one payment per order (the orderId is the idempotency pivot for event
// redelivery); the idempotency key additionally dedups externally retried
// requests. Gateway correlation ids are kept for callback verification.
type Payment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	amount         float64
	status         Status
	method         Method
	idempotencyKey string
	gateway        GatewayDetails
	attemptCount   int
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewPayment creates a pending payment attempt for an order.
func NewPayment(id, orderID kernel.UUID, amount float64, method Method, idempotencyKey string) (*Payment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is not greater than 0", amount))
	}
	if idempotencyKey == "" {
		return nil, errs.NewValueIsRequiredError("idempotencyKey")
	}

	now := time.Now()
	return &Payment{
		id:             id,
		orderID:        orderID,
		amount:         amount,
		status:         StatusPending,
		method:         method,
		idempotencyKey: idempotencyKey,
		attemptCount:   1,
		createdAt:      now,
		updatedAt:      now,
		isConstructed:  true,
	}, nil
}

// RestorePayment reconstructs a payment aggregate from persistence.
func RestorePayment(
	id, orderID kernel.UUID,
	amount float64,
	status Status,
	method Method,
	idempotencyKey string,
	gateway GatewayDetails,
	attemptCount int,
	createdAt, updatedAt time.Time,
) (*Payment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Payment{
		id:             id,
		orderID:        orderID,
		amount:         amount,
		status:         status,
		method:         method,
		idempotencyKey: idempotencyKey,
		gateway:        gateway,
		attemptCount:   attemptCount,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Payment was created through a factory function.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// OrderID returns the paid order's identifier.
func (p *Payment) OrderID() kernel.UUID { return p.orderID }

// Amount returns the charged amount.
func (p *Payment) Amount() float64 { return p.amount }

// Status returns the current attempt status.
func (p *Payment) Status() Status { return p.status }

// Method returns the payment method.
func (p *Payment) Method() Method { return p.method }

// IdempotencyKey returns the deduplication key for this attempt.
func (p *Payment) IdempotencyKey() string { return p.idempotencyKey }

// Gateway returns the gateway correlation details.
func (p *Payment) Gateway() GatewayDetails { return p.gateway }

// AttemptCount returns the number of attempts recorded on this payment.
func (p *Payment) AttemptCount() int { return p.attemptCount }

// CreatedAt returns the creation timestamp.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }

// IsResolved reports whether the attempt reached a terminal status.
func (p *Payment) IsResolved() bool {
	return p.status == StatusSuccess || p.status == StatusFailed
}

// MarkSucceeded resolves the attempt as successful. Used for methods that
// settle synchronously, such as cash on delivery.
func (p *Payment) MarkSucceeded(message string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	p.status = StatusSuccess
	p.gateway.Message = message
	p.updatedAt = time.Now()
	return nil
}

// MarkFailed resolves the attempt as failed with the gateway's result code
// and message.
func (p *Payment) MarkFailed(resultCode int, message string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	p.status = StatusFailed
	p.gateway.ResultCode = resultCode
	p.gateway.Message = message
	p.updatedAt = time.Now()
	return nil
}

// AcceptGatewayRedirect records a gateway attempt that issued a payment URL.
// The attempt stays pending until the gateway's callback resolves it.
func (p *Payment) AcceptGatewayRedirect(requestID, externalOrderID, payURL string, resultCode int, message string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if payURL == "" {
		return errs.NewValueIsRequiredError("payUrl")
	}

	p.gateway.RequestID = requestID
	p.gateway.ExternalOrderID = externalOrderID
	p.gateway.PayURL = payURL
	p.gateway.ResultCode = resultCode
	p.gateway.Message = message
	p.status = StatusPending
	p.updatedAt = time.Now()
	return nil
}

// ResolveFromCallback applies the gateway's asynchronous callback exactly
// once. An already-successful payment short-circuits without mutation, and
// a requestId mismatch is rejected as a conflict (anti-replay check).
// Returns true when the callback actually resolved the payment.
func (p *Payment) ResolveFromCallback(requestID string, resultCode int, transactionID, message string) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	if p.status == StatusSuccess {
		return false, nil
	}

	if requestID != p.gateway.RequestID {
		return false, errs.NewConflictErrorWithCause("gateway callback",
			fmt.Errorf("requestId %q does not match the stored attempt", requestID))
	}

	if resultCode == 0 {
		p.status = StatusSuccess
	} else {
		p.status = StatusFailed
	}
	p.gateway.ResultCode = resultCode
	p.gateway.TransactionID = transactionID
	p.gateway.Message = message
	p.updatedAt = time.Now()
	return true, nil
}
