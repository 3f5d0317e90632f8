package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"fooddrone/internal/core/domain/model/order"
	"fooddrone/internal/core/events"
	"fooddrone/internal/core/ports"
	"fooddrone/internal/pkg/errs"
)

// CreateOrderCommandHandler places an order: it validates the customer and
// the requested products against their owning services, reserves stock line
// by line, and persists the order before announcing it on the bus.
//
// Stock reservation is the first saga leg. When a line cannot be reserved,
// every line reserved so far is released again and the order is persisted
// in failed status, so the shortfall is visible to the customer but no
// inventory stays locked.
type CreateOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	catalog    ports.CatalogClient
	users      ports.UserClient
	bus        ports.EventBus
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	catalog ports.CatalogClient,
	users ports.UserClient,
	bus ports.EventBus,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		users:      users,
		bus:        bus,
		logger:     logger,
	}
}

// Handle processes the order placement command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.users.GetUser(ctx, cmd.UserID()); err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		product, err := h.catalog.GetProduct(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if !product.RestaurantID.IsEqual(cmd.RestaurantID()) {
			return errs.NewValueIsInvalidError("productId")
		}
		// Checked against the snapshot before any stock mutation; the
		// reservation call still guards against concurrent depletion.
		if input.Quantity > product.Stock {
			return errs.NewInsufficientStockError(product.ID.String(), input.Quantity, product.Stock)
		}

		item, err := order.NewItem(product.ID, product.Name, input.Quantity, product.Price)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), cmd.RestaurantID(),
		items, cmd.DeliveryInfo(), cmd.PaymentMethod(),
	)
	if err != nil {
		return err
	}

	reserveErr := h.reserveStock(ctx, cmd.Items())
	if reserveErr != nil {
		if err := newOrder.FailReservation(); err != nil {
			return err
		}
	}

	if err := h.persist(ctx, newOrder); err != nil {
		return err
	}

	if reserveErr != nil {
		return reserveErr
	}

	created := events.OrderCreated{
		OrderID:       newOrder.ID().String(),
		UserID:        newOrder.UserID().String(),
		RestaurantID:  newOrder.RestaurantID().String(),
		TotalPrice:    newOrder.TotalPrice(),
		PaymentMethod: newOrder.PaymentMethod(),
		DeliveryInfo:  deliveryInfoEvent(newOrder.DeliveryInfo()),
	}
	return publish(ctx, h.bus, events.TopicOrderCreated, created)
}

// reserveStock reserves every line in order. On the first failure it
// releases the lines reserved so far; a failed release is logged and kept
// going, since a stuck reservation beats a crashed compensation loop.
func (h *CreateOrderCommandHandler) reserveStock(ctx context.Context, items []OrderItemInput) error {
	for i, input := range items {
		err := h.catalog.ReduceStock(ctx, input.ProductID, input.Quantity)
		if err == nil {
			continue
		}

		for _, reserved := range items[:i] {
			if restoreErr := h.catalog.RestoreStock(ctx, reserved.ProductID, reserved.Quantity); restoreErr != nil {
				h.logger.ErrorContext(ctx, "stock release failed",
					"productId", reserved.ProductID.String(), "error", restoreErr)
			}
		}
		return err
	}
	return nil
}

func (h *CreateOrderCommandHandler) persist(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// deliveryInfoEvent maps the aggregate's contact snapshot to its wire form.
func deliveryInfoEvent(info order.DeliveryInfo) events.DeliveryInfo {
	return events.DeliveryInfo{
		FullName: info.FullName,
		Phone:    info.Phone,
		Address:  info.Address,
		City:     info.City,
		Notes:    info.Notes,
	}
}

// publish marshals an event payload and hands it to the bus.
func publish(ctx context.Context, bus ports.EventBus, topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return bus.Publish(ctx, topic, payload)
}
