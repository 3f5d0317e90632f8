// Package queries contains the read side: handlers that bypass the
// aggregates and read the database directly, returning flat models shaped
// for the HTTP layer.
package queries

import (
	"errors"
	"time"

	"fooddrone/internal/core/domain/model/kernel"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery retrieves one order with its lines.
type GetOrderQuery struct {
	orderID kernel.UUID

	isConstructed bool
}

// NewGetOrderQuery validates and creates the query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetOrderQueryIsNotConstructed
	}
	return nil
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// OrderItemResponse is one order line in the read model.
type OrderItemResponse struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// GetOrderQueryResponse is the order read model.
type GetOrderQueryResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	RestaurantID  string              `json:"restaurantId"`
	Items         []OrderItemResponse `json:"items"`
	TotalPrice    float64             `json:"totalPrice"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	PaymentMethod string              `json:"paymentMethod"`
	DroneID       string              `json:"droneId,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	PickedUpAt    *time.Time          `json:"pickedUpAt,omitempty"`
	DeliveredAt   *time.Time          `json:"deliveredAt,omitempty"`
}
