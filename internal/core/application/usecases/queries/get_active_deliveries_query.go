package queries

import (
	"errors"
	"time"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor")

// GetActiveDeliveriesQuery retrieves every flight still in the air.
type GetActiveDeliveriesQuery struct {
	isConstructed bool
}

// NewGetActiveDeliveriesQuery creates the query.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{isConstructed: true}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetActiveDeliveriesQueryIsNotConstructed
	}
	return nil
}

// GetActiveDeliveriesQueryResponse is the in-flight delivery read model.
type GetActiveDeliveriesQueryResponse struct {
	ID                  string     `json:"id"`
	OrderID             string     `json:"orderId"`
	DroneCode           string     `json:"droneCode"`
	Status              string     `json:"status"`
	CurrentLat          float64    `json:"currentLat"`
	CurrentLng          float64    `json:"currentLng"`
	DistanceRemainingKm float64    `json:"distanceRemainingKm"`
	EstimatedArrival    *time.Time `json:"estimatedArrival,omitempty"`
}
