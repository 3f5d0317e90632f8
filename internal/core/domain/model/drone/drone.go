package drone

import (
	"errors"
	"fmt"
	"math"
	"time"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"
)

// ErrDroneIsNotConstructed is returned when a Drone instance was not created
// through the NewDrone or RestoreDrone factory functions.
var ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone or RestoreDrone")

const (
	// MinDispatchBattery is the battery floor below which a drone is not
	// considered for dispatch even when its status is available.
	MinDispatchBattery = 30

	// BatteryDrainPerKm is the battery percentage consumed per kilometre of
	// the delivery leg, rounded up once per completed delivery.
	BatteryDrainPerKm = 2.0

	// DefaultSpeedKmh is the cruise speed assigned to new drones.
	DefaultSpeedKmh = 45.0
)

// Status is the fleet state of a drone.
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusBusy        Status = "BUSY"
	StatusCharging    Status = "CHARGING"
	StatusMaintenance Status = "MAINTENANCE"
	StatusOffline     Status = "OFFLINE"
)

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusBusy, StatusCharging, StatusMaintenance, StatusOffline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("drone status",
			fmt.Errorf("%q is not a valid drone status", string(s)))
	}
}

// Drone is a fleet vehicle. The code is the human-facing unique identifier
// used in order projections and notifications; the UUID is the storage key.
type Drone struct {
	id              kernel.UUID
	code            string
	status          Status
	battery         int
	location        kernel.GeoPoint
	speedKmh        float64
	totalDeliveries int
	totalDistanceKm float64
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewDrone registers a new drone at a home location, fully charged and
// available.
func NewDrone(id kernel.UUID, code string, home kernel.GeoPoint) (*Drone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	now := time.Now()
	return &Drone{
		id:            id,
		code:          code,
		status:        StatusAvailable,
		battery:       100,
		location:      home,
		speedKmh:      DefaultSpeedKmh,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreDrone reconstructs a drone aggregate from persistence.
func RestoreDrone(
	id kernel.UUID,
	code string,
	status Status,
	battery int,
	location kernel.GeoPoint,
	speedKmh float64,
	totalDeliveries int,
	totalDistanceKm float64,
	createdAt, updatedAt time.Time,
) (*Drone, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if battery < 0 || battery > 100 {
		return nil, errs.NewValueIsOutOfRangeError("battery", battery, 0, 100)
	}

	return &Drone{
		id:              id,
		code:            code,
		status:          status,
		battery:         battery,
		location:        location,
		speedKmh:        speedKmh,
		totalDeliveries: totalDeliveries,
		totalDistanceKm: totalDistanceKm,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Drone was created through a factory function.
func (d *Drone) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDroneIsNotConstructed
	}
	return nil
}

// ID returns the drone identifier.
func (d *Drone) ID() kernel.UUID { return d.id }

// Code returns the human-facing drone code.
func (d *Drone) Code() string { return d.code }

// Status returns the fleet status.
func (d *Drone) Status() Status { return d.status }

// Battery returns the battery percentage, 0 to 100.
func (d *Drone) Battery() int { return d.battery }

// Location returns the drone's last known position.
func (d *Drone) Location() kernel.GeoPoint { return d.location }

// SpeedKmh returns the cruise speed.
func (d *Drone) SpeedKmh() float64 { return d.speedKmh }

// TotalDeliveries returns the completed delivery count.
func (d *Drone) TotalDeliveries() int { return d.totalDeliveries }

// TotalDistanceKm returns the lifetime flown distance.
func (d *Drone) TotalDistanceKm() float64 { return d.totalDistanceKm }

// CreatedAt returns the registration timestamp.
func (d *Drone) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (d *Drone) UpdatedAt() time.Time { return d.updatedAt }

// IsAvailableForDispatch reports whether the dispatcher may claim this
// drone: available status and enough battery for a round trip.
func (d *Drone) IsAvailableForDispatch() bool {
	return d.status == StatusAvailable && d.battery >= MinDispatchBattery
}

// MarkBusy claims the drone for a delivery.
func (d *Drone) MarkBusy() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.status != StatusAvailable {
		return errs.NewConflictErrorWithCause("drone",
			fmt.Errorf("drone %s is %s, not available", d.code, d.status))
	}

	d.status = StatusBusy
	d.updatedAt = time.Now()
	return nil
}

// MarkAvailable releases the drone back into the pool after a delivery.
func (d *Drone) MarkAvailable() error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.status = StatusAvailable
	d.updatedAt = time.Now()
	return nil
}

// MoveTo updates the drone's position. Battery and distance accounting
// happens once per delivery in RecordDelivery, not per position sample.
func (d *Drone) MoveTo(position kernel.GeoPoint) error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.location = position
	d.updatedAt = time.Now()
	return nil
}

// RecordDelivery bumps the completed-delivery counter and charges the
// drone for the delivery leg: legKm is added to the lifetime distance and
// the battery drops by ceil(legKm * BatteryDrainPerKm), clamped at zero.
func (d *Drone) RecordDelivery(legKm float64) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if legKm < 0 {
		return errs.NewValueIsOutOfRangeError("legKm", legKm, 0, math.MaxFloat64)
	}

	d.totalDeliveries++
	d.totalDistanceKm += legKm
	d.battery -= int(math.Ceil(legKm * BatteryDrainPerKm))
	if d.battery < 0 {
		d.battery = 0
	}
	d.updatedAt = time.Now()
	return nil
}

// Recharge restores a full battery and returns the drone to the pool.
func (d *Drone) Recharge() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.status == StatusBusy {
		return errs.NewConflictErrorWithCause("drone",
			fmt.Errorf("drone %s is mid-delivery and cannot recharge", d.code))
	}

	d.battery = 100
	d.status = StatusAvailable
	d.updatedAt = time.Now()
	return nil
}

// SendToMaintenance pulls the drone out of the pool.
func (d *Drone) SendToMaintenance() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.status == StatusBusy {
		return errs.NewConflictErrorWithCause("drone",
			fmt.Errorf("drone %s is mid-delivery and cannot enter maintenance", d.code))
	}

	d.status = StatusMaintenance
	d.updatedAt = time.Now()
	return nil
}
