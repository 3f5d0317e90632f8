package delivery

import (
	"fmt"

	"fooddrone/internal/pkg/errs"
)

// Status is the flight state of a delivery.
type Status int

const (
	Unknown Status = iota
	// PickingUp covers the leg from the drone's position to the restaurant.
	PickingUp
	// PickedUp is the instant of pickup at the restaurant. It is transient:
	// the motion sweep moves the delivery on to Delivering in the same tick.
	PickedUp
	// Delivering covers the leg from the restaurant to the customer.
	Delivering
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:    "UNKNOWN",
	PickingUp:  "PICKING_UP",
	PickedUp:   "PICKED_UP",
	Delivering: "DELIVERING",
	Completed:  "COMPLETED",
	Cancelled:  "CANCELLED",
}

var allowedTransitions = map[Status][]Status{
	PickingUp:  {PickedUp, Cancelled},
	PickedUp:   {Delivering, Cancelled},
	Delivering: {Completed, Cancelled},
}

// String returns the wire name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%d is not a valid delivery status", int(s)))
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// TransitionTo validates a forward step in the flight plan and returns the
// target status, or a conflict error for an illegal step.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return Unknown, errs.NewConflictErrorWithCause("delivery status",
		fmt.Errorf("cannot transition from %s to %s", s, next))
}

// StatusFromString parses a wire name into a status.
func StatusFromString(name string) (Status, error) {
	for status, n := range statusNames {
		if n == name && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("delivery status",
		fmt.Errorf("%q is not a valid delivery status", name))
}
