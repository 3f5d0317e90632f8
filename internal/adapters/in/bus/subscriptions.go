// Package bus wires the saga choreography: each topic's JSON payload is
// decoded, turned into a command, and handed to its handler. A handler
// error propagates back to the bus, which redelivers; decode failures are
// dropped with a log line because redelivering a malformed payload can
// never succeed.
package bus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"fooddrone/internal/core/application/usecases/commands"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/payment"
	"fooddrone/internal/core/domain/model/restaurant"
	"fooddrone/internal/core/domain/services"
	"fooddrone/internal/core/events"
	"fooddrone/internal/core/ports"
	"fooddrone/internal/pkg/errs"
)

// Subscriptions binds topics to the command handlers that drive the saga.
type Subscriptions struct {
	processPayment        commands.ProcessPaymentCommandHandler
	applyPaymentResult    commands.ApplyPaymentResultCommandHandler
	acceptRestaurantOrder commands.AcceptRestaurantOrderCommandHandler
	dispatchDrone         commands.DispatchDroneCommandHandler
	applyDeliveryProgress commands.ApplyDeliveryProgressCommandHandler

	notifier ports.Notifier
	logger   *slog.Logger
}

// NewSubscriptions creates the saga subscription set.
func NewSubscriptions(
	processPayment commands.ProcessPaymentCommandHandler,
	applyPaymentResult commands.ApplyPaymentResultCommandHandler,
	acceptRestaurantOrder commands.AcceptRestaurantOrderCommandHandler,
	dispatchDrone commands.DispatchDroneCommandHandler,
	applyDeliveryProgress commands.ApplyDeliveryProgressCommandHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *Subscriptions {
	return &Subscriptions{
		processPayment:        processPayment,
		applyPaymentResult:    applyPaymentResult,
		acceptRestaurantOrder: acceptRestaurantOrder,
		dispatchDrone:         dispatchDrone,
		applyDeliveryProgress: applyDeliveryProgress,
		notifier:              notifier,
		logger:                logger.With("component", "subscriptions"),
	}
}

// Register subscribes every saga topic on the bus. Must run before the bus
// starts.
func (s *Subscriptions) Register(bus ports.EventBus) {
	bus.Subscribe(events.TopicOrderCreated, s.onOrderCreated)
	bus.Subscribe(events.TopicPaymentProcessed, s.onPaymentProcessed)
	bus.Subscribe(events.TopicOrderPaid, s.onOrderPaid)
	bus.Subscribe(events.TopicOrderReady, s.onOrderReady)
	bus.Subscribe(events.TopicOrderPickedUp, s.onOrderPickedUp)
	bus.Subscribe(events.TopicOrderDelivering, s.onOrderDelivering)
	bus.Subscribe(events.TopicOrderCompleted, s.onOrderCompleted)
	bus.Subscribe(events.TopicDroneLocationUpdate, s.onDroneLocationUpdate)
}

func (s *Subscriptions) onOrderCreated(ctx context.Context, payload []byte) error {
	var event events.OrderCreated
	if !s.decode(events.TopicOrderCreated, payload, &event) {
		return nil
	}

	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		s.logger.Error("event carries invalid order id", "topic", events.TopicOrderCreated, "error", err)
		return nil
	}

	cmd, err := commands.NewProcessPaymentCommand(orderID, event.TotalPrice, payment.MethodFromString(event.PaymentMethod))
	if err != nil {
		return err
	}
	return s.processPayment.Handle(ctx, cmd)
}

func (s *Subscriptions) onPaymentProcessed(ctx context.Context, payload []byte) error {
	var event events.PaymentProcessed
	if !s.decode(events.TopicPaymentProcessed, payload, &event) {
		return nil
	}

	s.notifyDeliveryStatus(ctx, event.OrderID, payload)

	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		s.logger.Error("event carries invalid order id", "topic", events.TopicPaymentProcessed, "error", err)
		return nil
	}

	cmd, err := commands.NewApplyPaymentResultCommand(orderID, payment.Status(event.Status), event.Message)
	if err != nil {
		return err
	}
	return s.applyPaymentResult.Handle(ctx, cmd)
}

func (s *Subscriptions) onOrderPaid(ctx context.Context, payload []byte) error {
	var event events.OrderPaid
	if !s.decode(events.TopicOrderPaid, payload, &event) {
		return nil
	}

	s.notifyDeliveryStatus(ctx, event.OrderID, payload)

	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		s.logger.Error("event carries invalid order id", "topic", events.TopicOrderPaid, "error", err)
		return nil
	}
	restaurantID, err := kernel.UUIDFromString(event.RestaurantID)
	if err != nil {
		s.logger.Error("event carries invalid restaurant id", "topic", events.TopicOrderPaid, "error", err)
		return nil
	}

	cmd, err := commands.NewAcceptRestaurantOrderCommand(orderID, restaurantID, restaurant.Contact{
		FullName: event.DeliveryInfo.FullName,
		Phone:    event.DeliveryInfo.Phone,
		Address:  event.DeliveryInfo.Address,
	})
	if err != nil {
		return err
	}
	return s.acceptRestaurantOrder.Handle(ctx, cmd)
}

func (s *Subscriptions) onOrderReady(ctx context.Context, payload []byte) error {
	var event events.OrderReady
	if !s.decode(events.TopicOrderReady, payload, &event) {
		return nil
	}

	s.notifyDeliveryStatus(ctx, event.OrderID, payload)

	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		s.logger.Error("event carries invalid order id", "topic", events.TopicOrderReady, "error", err)
		return nil
	}

	cmd, err := commands.NewDispatchDroneCommand(orderID, event.RestaurantAddress, event.DeliveryAddress)
	if err != nil {
		return err
	}

	err = s.dispatchDrone.Handle(ctx, cmd)
	if errors.Is(err, services.ErrNoAvailableDrone) {
		// Redelivery retries the dispatch until a drone frees up.
		s.logger.Warn("no drone available, dispatch will be retried", "orderId", event.OrderID)
		return err
	}
	return err
}

func (s *Subscriptions) onOrderPickedUp(ctx context.Context, payload []byte) error {
	var event events.OrderPickedUp
	if !s.decode(events.TopicOrderPickedUp, payload, &event) {
		return nil
	}

	s.notifyDeliveryStatus(ctx, event.OrderID, payload)
	return s.applyProgress(ctx, events.TopicOrderPickedUp, event.OrderID, event.DroneID,
		commands.StagePickedUp, time.Time{})
}

func (s *Subscriptions) onOrderDelivering(ctx context.Context, payload []byte) error {
	var event events.OrderDelivering
	if !s.decode(events.TopicOrderDelivering, payload, &event) {
		return nil
	}

	s.notifyDeliveryStatus(ctx, event.OrderID, payload)
	return s.applyProgress(ctx, events.TopicOrderDelivering, event.OrderID, event.DroneID,
		commands.StageDelivering, time.Time{})
}

func (s *Subscriptions) onOrderCompleted(ctx context.Context, payload []byte) error {
	var event events.OrderCompleted
	if !s.decode(events.TopicOrderCompleted, payload, &event) {
		return nil
	}

	s.notifyDeliveryStatus(ctx, event.OrderID, payload)
	return s.applyProgress(ctx, events.TopicOrderCompleted, event.OrderID, event.DroneID,
		commands.StageCompleted, event.CompletedAt)
}

func (s *Subscriptions) onDroneLocationUpdate(ctx context.Context, payload []byte) error {
	var event events.DroneLocationUpdate
	if !s.decode(events.TopicDroneLocationUpdate, payload, &event) {
		return nil
	}

	if err := s.notifier.NotifyDroneLocation(ctx, event.OrderID, payload); err != nil {
		s.logger.Warn("drone location push failed", "orderId", event.OrderID, "error", err)
	}
	return nil
}

func (s *Subscriptions) applyProgress(
	ctx context.Context,
	topic, rawOrderID, droneCode string,
	stage commands.ProgressStage,
	completedAt time.Time,
) error {
	orderID, err := kernel.UUIDFromString(rawOrderID)
	if err != nil {
		s.logger.Error("event carries invalid order id", "topic", topic, "error", err)
		return nil
	}

	cmd, err := commands.NewApplyDeliveryProgressCommand(orderID, droneCode, stage, completedAt)
	if err != nil {
		return err
	}

	err = s.applyDeliveryProgress.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		s.logger.Error("progress event for unknown order", "topic", topic, "orderId", rawOrderID)
		return nil
	}
	return err
}

func (s *Subscriptions) decode(topic string, payload []byte, event any) bool {
	if err := json.Unmarshal(payload, event); err != nil {
		s.logger.Error("dropping undecodable event", "topic", topic, "error", err)
		return false
	}
	return true
}

func (s *Subscriptions) notifyDeliveryStatus(ctx context.Context, orderID string, payload []byte) {
	if err := s.notifier.NotifyDeliveryStatus(ctx, orderID, payload); err != nil {
		s.logger.Warn("delivery status push failed", "orderId", orderID, "error", err)
	}
}
