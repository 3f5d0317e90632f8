package commands

import (
	"context"

	"fooddrone/internal/core/events"
	"fooddrone/internal/core/ports"
)

// MarkOrderReadyCommandHandler finishes a kitchen ticket and announces the
// order as ready for pickup. The announcement carries both addresses so the
// dispatcher never has to call back into the kitchen: the restaurant's
// address comes from the catalog, the customer's from the order snapshot.
type MarkOrderReadyCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	catalog    ports.CatalogClient
	bus        ports.EventBus
}

// NewMarkOrderReadyCommandHandler creates a handler for kitchen completion.
func NewMarkOrderReadyCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	catalog ports.CatalogClient,
	bus ports.EventBus,
) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		bus:        bus,
	}
}

// Handle processes the completion command.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
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
	if err := ticket.MarkReady(); err != nil {
		return err
	}
	if err := uow.RestaurantOrderRepository().Update(ctx, ticket); err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err := aggregate.MarkReady(); err != nil {
		return err
	}
	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	restaurantProfile, err := h.catalog.GetRestaurant(ctx, aggregate.RestaurantID())
	if err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	ready := events.OrderReady{
		OrderID:           aggregate.ID().String(),
		RestaurantID:      aggregate.RestaurantID().String(),
		RestaurantAddress: restaurantProfile.Address,
		DeliveryAddress:   aggregate.DeliveryInfo().Address,
		DeliveryPhone:     aggregate.DeliveryInfo().Phone,
		DeliveryFullName:  aggregate.DeliveryInfo().FullName,
	}
	return publish(ctx, h.bus, events.TopicOrderReady, ready)
}
