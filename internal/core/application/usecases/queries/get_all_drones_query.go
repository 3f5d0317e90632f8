package queries

import (
	"errors"
)

var ErrGetAllDronesQueryIsNotConstructed = errors.New(
	"GetAllDronesQuery must be created via NewGetAllDronesQuery constructor")

// GetAllDronesQuery retrieves the whole fleet with its statistics.
type GetAllDronesQuery struct {
	isConstructed bool
}

// NewGetAllDronesQuery creates the query.
func NewGetAllDronesQuery() GetAllDronesQuery {
	return GetAllDronesQuery{isConstructed: true}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDronesQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetAllDronesQueryIsNotConstructed
	}
	return nil
}

// GetAllDronesQueryResponse is the fleet read model.
type GetAllDronesQueryResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	Status          string  `json:"status"`
	Battery         int     `json:"battery"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	SpeedKmh        float64 `json:"speedKmh"`
	TotalDeliveries int     `json:"totalDeliveries"`
	TotalDistanceKm float64 `json:"totalDistanceKm"`
}
