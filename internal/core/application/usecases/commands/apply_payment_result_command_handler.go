package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddrone/internal/core/domain/model/order"
	"fooddrone/internal/core/domain/model/payment"
	"fooddrone/internal/core/events"
	"fooddrone/internal/core/ports"
	"fooddrone/internal/pkg/errs"
)

// ApplyPaymentResultCommandHandler is the order saga's reaction to a
// payment outcome. Success confirms the order and hands it to the kitchen
// via the order-paid event; failure cancels the order and releases the
// stock reserved at placement. Pending outcomes are ignored, the gateway
// callback will deliver the terminal one later.
//
// Redeliveries land on an order that already left the New status; the
// transition guard rejects them and the handler treats that as done.
type ApplyPaymentResultCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	catalog    ports.CatalogClient
	bus        ports.EventBus
	logger     *slog.Logger
}

// NewApplyPaymentResultCommandHandler creates a handler for payment
// outcome projection.
func NewApplyPaymentResultCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	catalog ports.CatalogClient,
	bus ports.EventBus,
	logger *slog.Logger,
) ApplyPaymentResultCommandHandler {
	return ApplyPaymentResultCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		bus:        bus,
		logger:     logger,
	}
}

// Handle processes the payment outcome command.
func (h *ApplyPaymentResultCommandHandler) Handle(ctx context.Context, cmd ApplyPaymentResultCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Status() == payment.StatusPending {
		return nil
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

	var transitionErr error
	if cmd.Status() == payment.StatusSuccess {
		transitionErr = aggregate.ConfirmPayment()
	} else {
		transitionErr = aggregate.RejectPayment()
	}
	if transitionErr != nil {
		if errors.Is(transitionErr, errs.ErrConflict) {
			h.logger.InfoContext(ctx, "payment outcome already applied, skipping",
				"orderId", cmd.OrderID().String(), "status", aggregate.Status().String())
			return nil
		}
		return transitionErr
	}

	if err := orders.Update(ctx, aggregate); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Status() == payment.StatusSuccess {
		paid := events.OrderPaid{
			OrderID:      aggregate.ID().String(),
			UserID:       aggregate.UserID().String(),
			RestaurantID: aggregate.RestaurantID().String(),
			TotalPrice:   aggregate.TotalPrice(),
			DeliveryInfo: deliveryInfoEvent(aggregate.DeliveryInfo()),
		}
		return publish(ctx, h.bus, events.TopicOrderPaid, paid)
	}

	h.releaseStock(ctx, aggregate)
	return nil
}

// releaseStock compensates the placement-time reservation, one call per
// order line. Failures are logged and the remaining lines still released.
func (h *ApplyPaymentResultCommandHandler) releaseStock(ctx context.Context, aggregate *order.Order) {
	for _, item := range aggregate.Items() {
		if err := h.catalog.RestoreStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			h.logger.ErrorContext(ctx, "stock release failed",
				"orderId", aggregate.ID().String(),
				"productId", item.ProductID().String(),
				"error", err)
		}
	}
}
