package delivery

import (
	"errors"
	"math"
	"time"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory functions.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// ArrivalThresholdKm is the distance under which a waypoint counts as
// reached. It exceeds the per-tick step so a flight cannot oscillate around
// its target.
const ArrivalThresholdKm = 0.05

// Progress is the outcome of one motion tick, consumed by the sweep to
// decide which events to publish.
type Progress struct {
	Status                  Status
	Position                kernel.GeoPoint
	MovedKm                 float64
	DistanceRemainingKm     float64
	EstimatedArrivalSeconds int64
	PickedUp                bool
	ReachedHalfway          bool
	Completed               bool
}

// Delivery is the flight record for one order. It caches both waypoints at
// creation so the motion sweep never re-geocodes, tracks the drone's
// interpolated position, and owns the one-shot halfway milestone for the
// customer leg.
type Delivery struct {
	id                 kernel.UUID
	orderID            kernel.UUID
	droneID            kernel.UUID
	droneCode          string
	status             Status
	restaurantLocation kernel.GeoPoint
	customerLocation   kernel.GeoPoint
	currentLocation    kernel.GeoPoint
	speedKmh           float64
	legTotalKm         float64
	halfwayNotified    bool
	estimatedArrival   *time.Time
	pickedUpAt         *time.Time
	completedAt        *time.Time
	createdAt          time.Time
	updatedAt          time.Time

	isConstructed bool
}

// NewDelivery opens a flight in PickingUp status. The drone starts at its
// current position and flies to the restaurant first.
func NewDelivery(
	id, orderID, droneID kernel.UUID,
	droneCode string,
	droneLocation, restaurantLocation, customerLocation kernel.GeoPoint,
	speedKmh float64,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), droneID.Validate()); err != nil {
		return nil, err
	}
	if droneCode == "" {
		return nil, errs.NewValueIsRequiredError("droneCode")
	}
	if speedKmh <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("speedKmh", speedKmh, 1, math.MaxFloat64)
	}

	now := time.Now()
	return &Delivery{
		id:                 id,
		orderID:            orderID,
		droneID:            droneID,
		droneCode:          droneCode,
		status:             PickingUp,
		restaurantLocation: restaurantLocation,
		customerLocation:   customerLocation,
		currentLocation:    droneLocation,
		speedKmh:           speedKmh,
		createdAt:          now,
		updatedAt:          now,
		isConstructed:      true,
	}, nil
}

// RestoreDelivery reconstructs a flight record from persistence.
func RestoreDelivery(
	id, orderID, droneID kernel.UUID,
	droneCode string,
	status Status,
	restaurantLocation, customerLocation, currentLocation kernel.GeoPoint,
	speedKmh, legTotalKm float64,
	halfwayNotified bool,
	estimatedArrival, pickedUpAt, completedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), droneID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Delivery{
		id:                 id,
		orderID:            orderID,
		droneID:            droneID,
		droneCode:          droneCode,
		status:             status,
		restaurantLocation: restaurantLocation,
		customerLocation:   customerLocation,
		currentLocation:    currentLocation,
		speedKmh:           speedKmh,
		legTotalKm:         legTotalKm,
		halfwayNotified:    halfwayNotified,
		estimatedArrival:   estimatedArrival,
		pickedUpAt:         pickedUpAt,
		completedAt:        completedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Delivery was created through a factory function.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// OrderID returns the delivered order's identifier.
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }

// DroneID returns the assigned drone's identifier.
func (d *Delivery) DroneID() kernel.UUID { return d.droneID }

// DroneCode returns the assigned drone's human-facing code.
func (d *Delivery) DroneCode() string { return d.droneCode }

// Status returns the flight status.
func (d *Delivery) Status() Status { return d.status }

// RestaurantLocation returns the cached pickup waypoint.
func (d *Delivery) RestaurantLocation() kernel.GeoPoint { return d.restaurantLocation }

// CustomerLocation returns the cached dropoff waypoint.
func (d *Delivery) CustomerLocation() kernel.GeoPoint { return d.customerLocation }

// CurrentLocation returns the drone's interpolated position.
func (d *Delivery) CurrentLocation() kernel.GeoPoint { return d.currentLocation }

// SpeedKmh returns the flight speed snapshot.
func (d *Delivery) SpeedKmh() float64 { return d.speedKmh }

// LegTotalKm returns the customer-leg length, cached at pickup.
func (d *Delivery) LegTotalKm() float64 { return d.legTotalKm }

// HalfwayNotified reports whether the halfway milestone was already sent.
func (d *Delivery) HalfwayNotified() bool { return d.halfwayNotified }

// EstimatedArrival returns the projected arrival time, or nil.
func (d *Delivery) EstimatedArrival() *time.Time { return d.estimatedArrival }

// PickedUpAt returns the pickup timestamp, or nil before pickup.
func (d *Delivery) PickedUpAt() *time.Time { return d.pickedUpAt }

// CompletedAt returns the completion timestamp, or nil.
func (d *Delivery) CompletedAt() *time.Time { return d.completedAt }

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (d *Delivery) UpdatedAt() time.Time { return d.updatedAt }

// IsActive reports whether the flight still needs motion ticks.
func (d *Delivery) IsActive() bool {
	return d.status == PickingUp || d.status == Delivering
}

// target returns the waypoint for the current leg.
func (d *Delivery) target() kernel.GeoPoint {
	if d.status == PickingUp {
		return d.restaurantLocation
	}
	return d.customerLocation
}

// Advance moves the flight by one tick of the given length.
//
// On the pickup leg, reaching the restaurant marks the delivery picked up
// and immediately rolls it into the customer leg within the same tick; the
// drone does not travel further until the next tick. On the customer leg
// the halfway milestone fires once when the remaining distance drops to
// half of the leg, and reaching the customer completes the flight. The
// estimated arrival is recomputed from the remaining distance every tick.
func (d *Delivery) Advance(tickSeconds float64) (Progress, error) {
	if err := d.Validate(); err != nil {
		return Progress{}, err
	}
	if !d.IsActive() {
		return Progress{}, errs.NewConflictError("delivery is not active")
	}

	stepKm := d.speedKmh / 3600.0 * tickSeconds
	target := d.target()

	before := d.currentLocation
	d.currentLocation = d.currentLocation.MoveTowards(target, stepKm)
	moved := before.DistanceTo(d.currentLocation)
	remaining := d.currentLocation.DistanceTo(target)

	now := time.Now()
	progress := Progress{MovedKm: moved}

	// The halfway milestone is checked before the arrival transitions so a
	// tick that crosses the midpoint and arrives still fires it.
	if d.status == Delivering && !d.halfwayNotified && d.legTotalKm > 0 && remaining <= d.legTotalKm/2 {
		d.halfwayNotified = true
		progress.ReachedHalfway = true
	}

	if d.status == PickingUp && remaining < ArrivalThresholdKm {
		d.currentLocation = d.restaurantLocation
		d.status = Delivering
		d.pickedUpAt = &now
		d.legTotalKm = d.restaurantLocation.DistanceTo(d.customerLocation)
		remaining = d.legTotalKm
		progress.PickedUp = true
	} else if d.status == Delivering && remaining < ArrivalThresholdKm {
		d.currentLocation = d.customerLocation
		d.status = Completed
		d.completedAt = &now
		remaining = 0
		progress.Completed = true
	}

	etaSeconds := int64(math.Ceil(remaining / d.speedKmh * 3600.0))
	if d.status == Completed {
		etaSeconds = 0
		d.estimatedArrival = nil
	} else {
		eta := now.Add(time.Duration(etaSeconds) * time.Second)
		d.estimatedArrival = &eta
	}

	d.updatedAt = now

	progress.Status = d.status
	progress.Position = d.currentLocation
	progress.DistanceRemainingKm = remaining
	progress.EstimatedArrivalSeconds = etaSeconds
	return progress, nil
}

// Cancel aborts an active flight.
func (d *Delivery) Cancel() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.status.IsTerminal() {
		return errs.NewConflictError("delivery is already finished")
	}

	d.status = Cancelled
	d.estimatedArrival = nil
	d.updatedAt = time.Now()
	return nil
}
