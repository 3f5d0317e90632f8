package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddrone/internal/core/ports"
	"fooddrone/internal/pkg/errs"
)

// CancelOrderCommandHandler aborts an order for its owner. An active flight
// is cancelled with it and the drone returned to the pool, and the stock
// reserved at placement is released. Terminal orders cannot be cancelled;
// the aggregate's transition guard rejects them.
type CancelOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	catalog    ports.CatalogClient
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	catalog ports.CatalogClient,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		logger:     logger,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if !aggregate.UserID().IsEqual(cmd.UserID()) {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
	}

	if err := aggregate.Cancel(); err != nil {
		return err
	}
	if err := orders.Update(ctx, aggregate); err != nil {
		return err
	}

	if err := h.groundFlight(ctx, uow, cmd); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	// Release the placement-time reservation. Best effort per line.
	for _, item := range aggregate.Items() {
		if err := h.catalog.RestoreStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			h.logger.ErrorContext(ctx, "stock release failed",
				"orderId", aggregate.ID().String(),
				"productId", item.ProductID().String(),
				"error", err)
		}
	}
	return nil
}

// groundFlight cancels the order's flight, if one is active, and returns
// its drone to the pool.
func (h *CancelOrderCommandHandler) groundFlight(ctx context.Context, uow ports.UnitOfWork, cmd CancelOrderCommand) error {
	flight, err := uow.DeliveryRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}
	if !flight.IsActive() {
		return nil
	}

	if err := flight.Cancel(); err != nil {
		return err
	}
	if err := uow.DeliveryRepository().Update(ctx, flight); err != nil {
		return err
	}

	vehicle, err := uow.DroneRepository().Get(ctx, flight.DroneID())
	if err != nil {
		return err
	}
	if err := vehicle.MarkAvailable(); err != nil {
		return err
	}
	return uow.DroneRepository().Update(ctx, vehicle)
}
