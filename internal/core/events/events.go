// Package events defines the topics and JSON payloads exchanged over the
// event bus. Payload field names follow the wire contract consumed by
// downstream clients; changing a tag is a breaking change.
package events

import "time"

// Topics carried by the event bus. Delivery is at-least-once with no
// cross-topic ordering, so every consumer must be idempotent.
const (
	TopicOrderCreated        = "order.created"
	TopicPaymentProcessed    = "payment.processed"
	TopicOrderPaid           = "order.paid"
	TopicOrderReady          = "order.ready"
	TopicOrderPickedUp       = "order.pickedup"
	TopicOrderDelivering     = "order.delivering"
	TopicOrderCompleted      = "order.completed"
	TopicDroneLocationUpdate = "drone.location.update"
)

// DeliveryInfo is the contact snapshot carried from order placement through
// dispatch; the delivery leg never re-reads it from the order.
type DeliveryInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// OrderCreated starts the payment leg of the saga.
type OrderCreated struct {
	OrderID       string       `json:"orderId"`
	UserID        string       `json:"userId"`
	RestaurantID  string       `json:"restaurantId"`
	TotalPrice    float64      `json:"totalPrice"`
	PaymentMethod string       `json:"paymentMethod"`
	DeliveryInfo  DeliveryInfo `json:"deliveryInfo"`
}

// PaymentProcessed reports a payment attempt's outcome back to the order
// saga. Status is SUCCESS, FAILED, or PENDING (gateway URL issued, awaiting
// the out-of-band callback).
type PaymentProcessed struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

// OrderPaid hands a successfully paid order to the restaurant kitchen.
type OrderPaid struct {
	OrderID      string       `json:"orderId"`
	UserID       string       `json:"userId"`
	RestaurantID string       `json:"restaurantId"`
	TotalPrice   float64      `json:"totalPrice"`
	DeliveryInfo DeliveryInfo `json:"deliveryInfo"`
}

// OrderReady announces that the kitchen has finished an order and the
// delivery dispatcher should assign a drone.
type OrderReady struct {
	OrderID           string `json:"orderId"`
	RestaurantID      string `json:"restaurantId"`
	RestaurantAddress string `json:"restaurantAddress"`
	DeliveryAddress   string `json:"deliveryAddress"`
	DeliveryPhone     string `json:"deliveryPhone"`
	DeliveryFullName  string `json:"deliveryFullName"`
}

// OrderPickedUp reports that the drone collected the order at the restaurant.
type OrderPickedUp struct {
	OrderID string `json:"orderId"`
	DroneID string `json:"droneId"`
}

// OrderDelivering reports the start of the customer leg.
type OrderDelivering struct {
	OrderID          string  `json:"orderId"`
	DroneID          string  `json:"droneId"`
	CurrentLat       float64 `json:"currentLat"`
	CurrentLng       float64 `json:"currentLng"`
	EstimatedMinutes float64 `json:"estimatedMinutes"`
}

// OrderCompleted reports a finished delivery.
type OrderCompleted struct {
	OrderID     string    `json:"orderId"`
	DroneID     string    `json:"droneId"`
	CompletedAt time.Time `json:"completedAt"`
	DeliveryLat float64   `json:"deliveryLat"`
	DeliveryLng float64   `json:"deliveryLng"`
}

// DroneLocationUpdate is the per-tick telemetry sample. Status carries the
// delivery leg, or the synthetic "HALFWAY" marker for the one-shot midpoint
// milestone.
type DroneLocationUpdate struct {
	OrderID                 string  `json:"orderId"`
	DroneID                 string  `json:"droneId"`
	Status                  string  `json:"status"`
	CurrentLat              float64 `json:"currentLat"`
	CurrentLng              float64 `json:"currentLng"`
	DistanceRemaining       float64 `json:"distanceRemaining"`
	CurrentSpeed            float64 `json:"currentSpeed"`
	EstimatedArrivalSeconds int64   `json:"estimatedArrivalSeconds"`
}

// StatusHalfway is the synthetic status used for the midpoint milestone
// sample on the delivering leg.
const StatusHalfway = "HALFWAY"
