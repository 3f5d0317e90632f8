package order

import (
	"errors"
	"time"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// PaymentStatus is the order's view of its payment, projected from the
// payment processor's events. The Payment aggregate remains the source of
// truth.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

// DeliveryInfo is the customer contact snapshot taken at order placement.
type DeliveryInfo struct {
	FullName string
	Phone    string
	Address  string
	City     string
	Notes    string
}

// Validate checks the mandatory contact fields.
func (d DeliveryInfo) Validate() error {
	if d.FullName == "" {
		return errs.NewValueIsRequiredError("deliveryInfo.fullName")
	}
	if d.Phone == "" {
		return errs.NewValueIsRequiredError("deliveryInfo.phone")
	}
	if d.Address == "" {
		return errs.NewValueIsRequiredError("deliveryInfo.address")
	}
	return nil
}

// Order is the aggregate root owned by the order saga coordinator. It holds
// the item snapshots, the status state machine, and the projections of
// downstream saga progress (payment status, assigned drone, delivery
// timestamps). All mutation goes through its methods; every transition is
// validated against the status DAG, which makes the event handlers that
// drive it naturally idempotent: a redelivered event attempting an
// already-applied transition is rejected as a conflict.
type Order struct {
	id            kernel.UUID
	userID        kernel.UUID
	restaurantID  kernel.UUID
	items         []Item
	totalPrice    float64
	status        Status
	paymentStatus PaymentStatus
	paymentMethod string
	deliveryInfo  DeliveryInfo
	droneID       string
	createdAt     time.Time
	updatedAt     time.Time
	pickedUpAt    *time.Time
	deliveredAt   *time.Time

	isConstructed bool
}

// NewOrder creates a new order in New status with payment pending.
// The total price is computed from the item snapshots. Creation and update
// timestamps are stamped here; there is no persistence-layer lifecycle
// callback doing it behind the scenes.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	deliveryInfo DeliveryInfo,
	paymentMethod string,
) (*Order, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if err := deliveryInfo.Validate(); err != nil {
		return nil, err
	}
	if paymentMethod == "" {
		return nil, errs.NewValueIsRequiredError("paymentMethod")
	}

	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	now := time.Now()
	return &Order{
		id:            id,
		userID:        userID,
		restaurantID:  restaurantID,
		items:         items,
		totalPrice:    total,
		status:        New,
		paymentStatus: PaymentPending,
		paymentMethod: paymentMethod,
		deliveryInfo:  deliveryInfo,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// Unlike NewOrder it accepts any valid status and the stored timestamps.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	totalPrice float64,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod string,
	deliveryInfo DeliveryInfo,
	droneID string,
	createdAt, updatedAt time.Time,
	pickedUpAt, deliveredAt *time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), restaurantID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		userID:        userID,
		restaurantID:  restaurantID,
		items:         items,
		totalPrice:    totalPrice,
		status:        status,
		paymentStatus: paymentStatus,
		paymentMethod: paymentMethod,
		deliveryInfo:  deliveryInfo,
		droneID:       droneID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		pickedUpAt:    pickedUpAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// UserID returns the ordering user's identifier.
func (o *Order) UserID() kernel.UUID { return o.userID }

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }

// Items returns the order lines. The slice must not be mutated.
func (o *Order) Items() []Item { return o.items }

// TotalPrice returns the total computed from the item snapshots.
func (o *Order) TotalPrice() float64 { return o.totalPrice }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the projected payment status.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// PaymentMethod returns the method chosen at placement.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// DeliveryInfo returns the contact snapshot.
func (o *Order) DeliveryInfo() DeliveryInfo { return o.deliveryInfo }

// DroneID returns the code of the drone that picked the order up, or "".
func (o *Order) DroneID() string { return o.droneID }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// PickedUpAt returns the pickup timestamp, or nil before pickup.
func (o *Order) PickedUpAt() *time.Time { return o.pickedUpAt }

// DeliveredAt returns the delivery timestamp, or nil before delivery.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// ConfirmPayment records a successful payment: New -> Confirmed.
func (o *Order) ConfirmPayment() error {
	return o.transition(Confirmed, func() {
		o.paymentStatus = PaymentSuccess
	})
}

// RejectPayment records a failed payment: the order is cancelled and the
// payment projection marked failed. Stock compensation is the caller's
// responsibility.
func (o *Order) RejectPayment() error {
	return o.transition(Cancelled, func() {
		o.paymentStatus = PaymentFailed
	})
}

// FailReservation marks the order failed after a broken stock reservation.
// Only legal from New, before the saga has started.
func (o *Order) FailReservation() error {
	return o.transition(Failed, nil)
}

// StartPreparing projects the kitchen's acceptance: Confirmed -> Preparing.
func (o *Order) StartPreparing() error {
	return o.transition(Preparing, nil)
}

// MarkReady projects the kitchen finishing the order: Preparing -> Ready.
func (o *Order) MarkReady() error {
	return o.transition(Ready, nil)
}

// MarkPickedUp projects the drone pickup: Ready -> PickedUp. Records the
// drone code and stamps the pickup time.
func (o *Order) MarkPickedUp(droneID string) error {
	if droneID == "" {
		return errs.NewValueIsRequiredError("droneID")
	}
	return o.transition(PickedUp, func() {
		o.droneID = droneID
		now := time.Now()
		o.pickedUpAt = &now
	})
}

// StartDelivering projects the customer leg: PickedUp -> Delivering.
func (o *Order) StartDelivering() error {
	return o.transition(Delivering, nil)
}

// Complete projects the finished delivery: Delivering -> Delivered.
func (o *Order) Complete(deliveredAt time.Time) error {
	return o.transition(Delivered, func() {
		at := deliveredAt
		o.deliveredAt = &at
	})
}

// Cancel transitions to Cancelled from any non-terminal status.
// Stock compensation for the reserved items is the caller's responsibility.
func (o *Order) Cancel() error {
	return o.transition(Cancelled, nil)
}

// UpdateStatus applies an arbitrary requested transition, validating it
// against the DAG. Used by the manual status-update entry point.
func (o *Order) UpdateStatus(next Status) error {
	return o.transition(next, nil)
}

// transition validates and applies a status change, runs the optional
// side-effect, and touches updatedAt.
func (o *Order) transition(next Status, apply func()) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	if apply != nil {
		apply()
	}
	o.updatedAt = time.Now()
	return nil
}
