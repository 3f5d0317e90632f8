package queries

import (
	"errors"
	"time"

	"fooddrone/internal/core/domain/model/kernel"
)

var ErrGetKitchenOrdersQueryIsNotConstructed = errors.New(
	"GetKitchenOrdersQuery must be created via NewGetKitchenOrdersQuery constructor")

// GetKitchenOrdersQuery retrieves a restaurant's kitchen tickets, oldest
// first.
type GetKitchenOrdersQuery struct {
	restaurantID kernel.UUID

	isConstructed bool
}

// NewGetKitchenOrdersQuery validates and creates the query.
func NewGetKitchenOrdersQuery(restaurantID kernel.UUID) (GetKitchenOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetKitchenOrdersQuery{}, err
	}

	return GetKitchenOrdersQuery{restaurantID: restaurantID, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenOrdersQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetKitchenOrdersQueryIsNotConstructed
	}
	return nil
}

// RestaurantID returns the restaurant's identifier.
func (q GetKitchenOrdersQuery) RestaurantID() kernel.UUID { return q.restaurantID }

// KitchenOrderResponse is one kitchen ticket in the read model.
type KitchenOrderResponse struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"orderId"`
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	DeliveryAddress string     `json:"deliveryAddress"`
	Status          string     `json:"status"`
	ConfirmedAt     *time.Time `json:"confirmedAt,omitempty"`
	ReadyAt         *time.Time `json:"readyAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
