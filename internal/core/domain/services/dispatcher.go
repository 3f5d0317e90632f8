package services

import (
	"errors"

	"fooddrone/internal/core/domain/model/drone"
	"fooddrone/internal/core/domain/model/kernel"
)

// ErrNoAvailableDrone is returned when the fleet has no dispatchable drone.
var ErrNoAvailableDrone = errors.New("no drone is available for dispatch")

// Dispatcher selects a drone for a pickup location.
type Dispatcher interface {
	Dispatch(pickup kernel.GeoPoint, candidates []*drone.Drone) (*drone.Drone, error)
}

var _ Dispatcher = &nearestDispatcher{}

type nearestDispatcher struct{}

// NewDispatcher creates a dispatcher that picks the dispatchable drone
// closest to the pickup point. Distance ties keep the earlier candidate.
func NewDispatcher() Dispatcher {
	return &nearestDispatcher{}
}

func (d *nearestDispatcher) Dispatch(pickup kernel.GeoPoint, candidates []*drone.Drone) (*drone.Drone, error) {
	var (
		best     *drone.Drone
		bestDist float64
	)

	for _, candidate := range candidates {
		if candidate == nil || !candidate.IsAvailableForDispatch() {
			continue
		}

		dist := candidate.Location().DistanceTo(pickup)
		if best == nil || dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}

	if best == nil {
		return nil, ErrNoAvailableDrone
	}
	return best, nil
}
