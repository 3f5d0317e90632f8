package queries

import (
	"errors"
	"time"

	"fooddrone/internal/core/domain/model/kernel"
)

var ErrGetOrderPaymentQueryIsNotConstructed = errors.New(
	"GetOrderPaymentQuery must be created via NewGetOrderPaymentQuery constructor")

// GetOrderPaymentQuery retrieves the payment attempt opened for an order.
type GetOrderPaymentQuery struct {
	orderID kernel.UUID

	isConstructed bool
}

// NewGetOrderPaymentQuery validates and creates the query.
func NewGetOrderPaymentQuery(orderID kernel.UUID) (GetOrderPaymentQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderPaymentQuery{}, err
	}

	return GetOrderPaymentQuery{orderID: orderID, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderPaymentQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetOrderPaymentQueryIsNotConstructed
	}
	return nil
}

// OrderID returns the paid order's identifier.
func (q GetOrderPaymentQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderPaymentQueryResponse is the payment read model. The pay URL is
// only present while a gateway payment is pending.
type GetOrderPaymentQueryResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Method        string    `json:"method"`
	PayURL        string    `json:"payUrl,omitempty"`
	TransactionID string    `json:"transactionId,omitempty"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
