package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/restaurant"
	"fooddrone/internal/core/ports"
	"fooddrone/internal/pkg/errs"
)

// AcceptRestaurantOrderCommandHandler opens the kitchen ticket when an
// order is paid. One ticket per order: a redelivered event finds the
// existing ticket and does nothing.
type AcceptRestaurantOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewAcceptRestaurantOrderCommandHandler creates a handler for kitchen
// ticket intake.
func NewAcceptRestaurantOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	logger *slog.Logger,
) AcceptRestaurantOrderCommandHandler {
	return AcceptRestaurantOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the intake command.
func (h *AcceptRestaurantOrderCommandHandler) Handle(ctx context.Context, cmd AcceptRestaurantOrderCommand) error {
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

	tickets := uow.RestaurantOrderRepository()

	existing, err := tickets.GetByOrderID(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		h.logger.InfoContext(ctx, "kitchen ticket already open, skipping",
			"orderId", cmd.OrderID().String())
		return nil
	}

	ticket, err := restaurant.NewRestaurantOrder(kernel.NewUUID(), cmd.OrderID(), cmd.RestaurantID(), cmd.Contact())
	if err != nil {
		return err
	}

	if err := tickets.Add(ctx, ticket); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
