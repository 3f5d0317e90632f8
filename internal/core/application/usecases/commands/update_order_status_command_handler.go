package commands

import (
	"context"

	"fooddrone/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies a manual, validated status change.
type UpdateOrderStatusCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for manual status
// updates.
func NewUpdateOrderStatusCommandHandler(uowFactory ports.UnitOfWorkFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orders := uow.OrderRepository()

	aggregate, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err := aggregate.UpdateStatus(cmd.Status()); err != nil {
		return err
	}
	if err := orders.Update(ctx, aggregate); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
