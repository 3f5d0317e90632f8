package commands

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/order"
	"fooddrone/internal/pkg/errs"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor")

// OrderItemInput is one requested order line. Name and price are resolved
// from the catalog at handling time, not trusted from the caller.
type OrderItemInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new food order.
type CreateOrderCommand struct {
	orderID       kernel.UUID
	userID        kernel.UUID
	restaurantID  kernel.UUID
	items         []OrderItemInput
	deliveryInfo  order.DeliveryInfo
	paymentMethod string

	isConstructed bool
}

// NewCreateOrderCommand validates and creates an order placement command.
func NewCreateOrderCommand(
	orderID, userID, restaurantID kernel.UUID,
	items []OrderItemInput,
	deliveryInfo order.DeliveryInfo,
	paymentMethod string,
) (CreateOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate(), restaurantID.Validate()); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
		if item.Quantity <= 0 {
			return CreateOrderCommand{}, errs.NewValueIsInvalidError("quantity")
		}
	}
	if err := deliveryInfo.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if paymentMethod == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("paymentMethod")
	}

	return CreateOrderCommand{
		orderID:       orderID,
		userID:        userID,
		restaurantID:  restaurantID,
		items:         items,
		deliveryInfo:  deliveryInfo,
		paymentMethod: paymentMethod,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrCreateOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// UserID returns the ordering user's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID { return c.userID }

// RestaurantID returns the restaurant's identifier.
func (c CreateOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemInput { return c.items }

// DeliveryInfo returns the customer contact details.
func (c CreateOrderCommand) DeliveryInfo() order.DeliveryInfo { return c.deliveryInfo }

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() string { return c.paymentMethod }
