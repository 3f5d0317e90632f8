package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddrone/internal/core/ports"
	"fooddrone/internal/pkg/errs"
)

// ApplyDeliveryProgressCommandHandler projects delivery milestones onto the
// order aggregate. The order's transition guard makes redeliveries no-ops:
// an already-applied milestone is rejected as a conflict and skipped.
type ApplyDeliveryProgressCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewApplyDeliveryProgressCommandHandler creates a handler for milestone
// projection.
func NewApplyDeliveryProgressCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	logger *slog.Logger,
) ApplyDeliveryProgressCommandHandler {
	return ApplyDeliveryProgressCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the projection command.
func (h *ApplyDeliveryProgressCommandHandler) Handle(ctx context.Context, cmd ApplyDeliveryProgressCommand) error {
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

	switch cmd.Stage() {
	case StagePickedUp:
		err = aggregate.MarkPickedUp(cmd.DroneCode())
	case StageDelivering:
		err = aggregate.StartDelivering()
	case StageCompleted:
		err = aggregate.Complete(cmd.CompletedAt())
	}
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			h.logger.InfoContext(ctx, "milestone already applied, skipping",
				"orderId", cmd.OrderID().String(), "stage", string(cmd.Stage()))
			return nil
		}
		return err
	}

	if err := orders.Update(ctx, aggregate); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
