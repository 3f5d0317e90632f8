package commands

import (
	"context"

	"fooddrone/internal/core/ports"
)

// ConfirmRestaurantOrderCommandHandler moves a kitchen ticket into
// preparation and projects the step onto the order in the same
// transaction.
type ConfirmRestaurantOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewConfirmRestaurantOrderCommandHandler creates a handler for kitchen
// confirmation.
func NewConfirmRestaurantOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) ConfirmRestaurantOrderCommandHandler {
	return ConfirmRestaurantOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the confirmation command.
func (h *ConfirmRestaurantOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmRestaurantOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ticket, err := uow.RestaurantOrderRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err := ticket.Confirm(); err != nil {
		return err
	}
	if err := uow.RestaurantOrderRepository().Update(ctx, ticket); err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err := aggregate.StartPreparing(); err != nil {
		return err
	}
	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
