package commands

import (
	"context"
	"log/slog"

	"fooddrone/internal/core/events"
	"fooddrone/internal/core/ports"
)

// ResolveGatewayCallbackCommandHandler settles a pending gateway payment
// from the provider's callback and re-announces the terminal outcome on the
// bus, which lets the saga pick up where the pending announcement left off.
// A replayed callback for an already-successful payment is acknowledged
// without publishing anything.
type ResolveGatewayCallbackCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	bus        ports.EventBus
	logger     *slog.Logger
}

// NewResolveGatewayCallbackCommandHandler creates a handler for gateway
// callbacks.
func NewResolveGatewayCallbackCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	bus ports.EventBus,
	logger *slog.Logger,
) ResolveGatewayCallbackCommandHandler {
	return ResolveGatewayCallbackCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
		logger:     logger,
	}
}

// Handle processes the callback command.
func (h *ResolveGatewayCallbackCommandHandler) Handle(ctx context.Context, cmd ResolveGatewayCallbackCommand) error {
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

	payments := uow.PaymentRepository()

	attempt, err := payments.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	resolved, err := attempt.ResolveFromCallback(
		cmd.RequestID(), cmd.ResultCode(), cmd.TransactionID(), cmd.Message(),
	)
	if err != nil {
		return err
	}
	if !resolved {
		h.logger.InfoContext(ctx, "callback replay on settled payment, skipping",
			"orderId", cmd.OrderID().String())
		return nil
	}

	if err := payments.Update(ctx, attempt); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	outcome := events.PaymentProcessed{
		OrderID:   cmd.OrderID().String(),
		PaymentID: attempt.ID().String(),
		Status:    string(attempt.Status()),
		Message:   cmd.Message(),
	}
	return publish(ctx, h.bus, events.TopicPaymentProcessed, outcome)
}
