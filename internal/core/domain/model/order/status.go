package order

import (
	"fmt"

	"fooddrone/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine whose transitions only ever move forward
// along the delivery flow, or sideways to Cancelled from any non-terminal
// state:
//
//	New ──> Confirmed ──> Preparing ──> Ready ──> PickedUp ──> Delivering ──> Delivered
//	 │          │             │           │           │             │
//	 ├──> Failed└─────────────┴───────────┴───────────┴─────────────┴──> Cancelled
//
// Failed is a local terminal state reached only when stock reservation
// breaks during order placement, before the saga starts.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// New is the initial status: order persisted, stock reserved, payment
	// not yet resolved.
	New

	// Confirmed indicates a successful payment.
	Confirmed

	// Preparing indicates the kitchen accepted the order.
	Preparing

	// Ready indicates the kitchen finished the order and a drone can be
	// dispatched.
	Ready

	// PickedUp indicates the drone collected the order at the restaurant.
	PickedUp

	// Delivering indicates the drone is en route to the customer.
	Delivering

	// Delivered is the successful terminal state.
	Delivered

	// Cancelled is the terminal state for payment failures and explicit
	// cancellations.
	Cancelled

	// Failed is the terminal state for orders whose stock reservation could
	// not be completed.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		New:        "NEW",
		Confirmed:  "CONFIRMED",
		Preparing:  "PREPARING",
		Ready:      "READY",
		PickedUp:   "PICKED_UP",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
		Failed:     "FAILED",
	}
}

// allowedTransitions holds the forward edges of the status DAG.
// Cancelled is handled separately: it is reachable from every
// non-terminal state.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		New:        {Confirmed, Failed},
		Confirmed:  {Preparing},
		Preparing:  {Ready},
		Ready:      {PickedUp},
		PickedUp:   {Delivering},
		Delivering: {Delivered},
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a wire-level status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Failed
}

// TransitionTo validates the transition from the receiver to next and
// returns next on success. Cancelled is reachable from any non-terminal
// state; every other edge must follow the DAG.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if next == Cancelled {
		if s.IsTerminal() {
			return Unknown, errs.NewConflictErrorWithCause(
				"order status transition",
				fmt.Errorf("cannot cancel an order in terminal status %s", s),
			)
		}
		return Cancelled, nil
	}

	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}

	return Unknown, errs.NewConflictErrorWithCause(
		"order status transition",
		fmt.Errorf("%s -> %s is not a legal transition", s, next),
	)
}
