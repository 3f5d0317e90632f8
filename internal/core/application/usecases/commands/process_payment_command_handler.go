package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/payment"
	"fooddrone/internal/core/events"
	"fooddrone/internal/core/ports"
	"fooddrone/internal/pkg/errs"
)

// ProcessPaymentCommandHandler charges an order when its creation event
// arrives. The order identifier is the idempotency pivot: a redelivered
// event finds the existing attempt and does nothing.
//
// Cash settles immediately. Gateway payments are initiated here and stay
// pending until the gateway's callback resolves them; the saga only reacts
// to the terminal outcome.
type ProcessPaymentCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	gateway    ports.PaymentGateway
	bus        ports.EventBus
	logger     *slog.Logger
}

// NewProcessPaymentCommandHandler creates a handler for payment processing.
func NewProcessPaymentCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	gateway ports.PaymentGateway,
	bus ports.EventBus,
	logger *slog.Logger,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		bus:        bus,
		logger:     logger,
	}
}

// Handle processes the payment command.
func (h *ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) error {
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

	existing, err := payments.GetByOrderID(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		h.logger.InfoContext(ctx, "payment already exists, skipping",
			"orderId", cmd.OrderID().String(), "status", string(existing.Status()))
		return nil
	}

	attempt, err := payment.NewPayment(
		kernel.NewUUID(), cmd.OrderID(), cmd.Amount(), cmd.Method(), cmd.OrderID().String(),
	)
	if err != nil {
		return err
	}

	outcome, err := h.resolve(ctx, attempt, cmd)
	if err != nil {
		return err
	}

	if err := payments.Add(ctx, attempt); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return publish(ctx, h.bus, events.TopicPaymentProcessed, outcome)
}

// resolve settles the attempt for cash or initiates the gateway leg, and
// builds the outcome event in either case. A gateway rejection resolves the
// attempt as failed rather than erroring the handler, so the saga cancels
// the order instead of replaying the event forever.
func (h *ProcessPaymentCommandHandler) resolve(
	ctx context.Context,
	attempt *payment.Payment,
	cmd ProcessPaymentCommand,
) (events.PaymentProcessed, error) {
	outcome := events.PaymentProcessed{
		OrderID:   cmd.OrderID().String(),
		PaymentID: attempt.ID().String(),
	}

	if cmd.Method() == payment.MethodCash {
		if err := attempt.MarkSucceeded("cash on delivery"); err != nil {
			return events.PaymentProcessed{}, err
		}
		outcome.Status = string(payment.StatusSuccess)
		outcome.Message = "cash on delivery"
		return outcome, nil
	}

	redirect, err := h.gateway.CreatePayment(ctx, cmd.OrderID(), cmd.Amount(), "order "+cmd.OrderID().String())
	if err != nil {
		h.logger.ErrorContext(ctx, "payment gateway rejected the attempt",
			"orderId", cmd.OrderID().String(), "error", err)
		if markErr := attempt.MarkFailed(0, err.Error()); markErr != nil {
			return events.PaymentProcessed{}, markErr
		}
		outcome.Status = string(payment.StatusFailed)
		outcome.Message = err.Error()
		return outcome, nil
	}

	if err := attempt.AcceptGatewayRedirect(
		redirect.RequestID, redirect.ExternalOrderID, redirect.PayURL,
		redirect.ResultCode, redirect.Message,
	); err != nil {
		return events.PaymentProcessed{}, err
	}
	outcome.Status = string(payment.StatusPending)
	outcome.Message = redirect.PayURL
	return outcome, nil
}
