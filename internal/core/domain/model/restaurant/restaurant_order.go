package restaurant

import (
	"errors"
	"fmt"
	"time"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"
)

// ErrRestaurantOrderIsNotConstructed is returned when a RestaurantOrder was
// not created through the factory functions.
var ErrRestaurantOrderIsNotConstructed = errors.New(
	"RestaurantOrder must be created via NewRestaurantOrder or RestoreRestaurantOrder")

// Status is the kitchen-side state of an accepted order ticket.
type Status string

const (
	StatusPendingConfirmation Status = "PENDING_CONFIRMATION"
	StatusPreparing           Status = "PREPARING"
	StatusReady               Status = "READY"
)

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	switch s {
	case StatusPendingConfirmation, StatusPreparing, StatusReady:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kitchen status",
			fmt.Errorf("%q is not a valid kitchen status", string(s)))
	}
}

// Contact is the customer contact snapshot carried on the ticket so kitchen
// staff can reach the customer without a lookup into the order service.
type Contact struct {
	FullName string
	Phone    string
	Address  string
}

// RestaurantOrder is the kitchen ticket the restaurant tracker keeps per
// paid order. One ticket per order; re-accepting the same order is the
// repository's unique-constraint concern, re-confirming is guarded here.
type RestaurantOrder struct {
	id           kernel.UUID
	orderID      kernel.UUID
	restaurantID kernel.UUID
	contact      Contact
	status       Status
	confirmedAt  *time.Time
	readyAt      *time.Time
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewRestaurantOrder opens a kitchen ticket awaiting staff confirmation.
func NewRestaurantOrder(id, orderID, restaurantID kernel.UUID, contact Contact) (*RestaurantOrder, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}

	now := time.Now()
	return &RestaurantOrder{
		id:            id,
		orderID:       orderID,
		restaurantID:  restaurantID,
		contact:       contact,
		status:        StatusPendingConfirmation,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreRestaurantOrder reconstructs a ticket from persistence.
func RestoreRestaurantOrder(
	id, orderID, restaurantID kernel.UUID,
	contact Contact,
	status Status,
	confirmedAt, readyAt *time.Time,
	createdAt, updatedAt time.Time,
) (*RestaurantOrder, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), restaurantID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &RestaurantOrder{
		id:            id,
		orderID:       orderID,
		restaurantID:  restaurantID,
		contact:       contact,
		status:        status,
		confirmedAt:   confirmedAt,
		readyAt:       readyAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the ticket was created through a factory function.
func (r *RestaurantOrder) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantOrderIsNotConstructed
	}
	return nil
}

// ID returns the ticket identifier.
func (r *RestaurantOrder) ID() kernel.UUID { return r.id }

// OrderID returns the tracked order's identifier.
func (r *RestaurantOrder) OrderID() kernel.UUID { return r.orderID }

// RestaurantID returns the restaurant's identifier.
func (r *RestaurantOrder) RestaurantID() kernel.UUID { return r.restaurantID }

// Contact returns the customer contact snapshot.
func (r *RestaurantOrder) Contact() Contact { return r.contact }

// Status returns the kitchen status.
func (r *RestaurantOrder) Status() Status { return r.status }

// ConfirmedAt returns when staff confirmed the ticket, or nil.
func (r *RestaurantOrder) ConfirmedAt() *time.Time { return r.confirmedAt }

// ReadyAt returns when the kitchen finished the ticket, or nil.
func (r *RestaurantOrder) ReadyAt() *time.Time { return r.readyAt }

// CreatedAt returns the creation timestamp.
func (r *RestaurantOrder) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (r *RestaurantOrder) UpdatedAt() time.Time { return r.updatedAt }

// Confirm records staff acceptance and moves the ticket into preparation.
func (r *RestaurantOrder) Confirm() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.status != StatusPendingConfirmation {
		return errs.NewConflictErrorWithCause("kitchen ticket",
			fmt.Errorf("cannot confirm a ticket in status %s", r.status))
	}

	now := time.Now()
	r.status = StatusPreparing
	r.confirmedAt = &now
	r.updatedAt = now
	return nil
}

// MarkReady records the kitchen finishing the ticket.
func (r *RestaurantOrder) MarkReady() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.status != StatusPreparing {
		return errs.NewConflictErrorWithCause("kitchen ticket",
			fmt.Errorf("cannot mark ready a ticket in status %s", r.status))
	}

	now := time.Now()
	r.status = StatusReady
	r.readyAt = &now
	r.updatedAt = now
	return nil
}
