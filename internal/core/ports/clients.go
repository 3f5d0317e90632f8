package ports

import (
	"context"

	"fooddrone/internal/core/domain/model/kernel"
)

// Product is the catalog's view of a sellable item.
type Product struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        float64
	Stock        int
}

// Restaurant is the catalog's view of a restaurant.
type Restaurant struct {
	ID      kernel.UUID
	Name    string
	Address string
	Phone   string
}

// CatalogClient talks to the product catalog service. Stock mutations are
// the saga's reservation and compensation legs.
type CatalogClient interface {
	// GetProduct fetches a product snapshot for validation and pricing.
	GetProduct(ctx context.Context, productID kernel.UUID) (Product, error)

	// GetRestaurant fetches the restaurant profile, including the pickup
	// address the geocoder resolves for dispatch.
	GetRestaurant(ctx context.Context, restaurantID kernel.UUID) (Restaurant, error)

	// ReduceStock reserves quantity units of a product.
	// Returns errs.InsufficientStockError when the reservation cannot be met.
	ReduceStock(ctx context.Context, productID kernel.UUID, quantity int) error

	// RestoreStock releases a reservation. This is the compensating action
	// for ReduceStock and must be called once per reserved line.
	RestoreStock(ctx context.Context, productID kernel.UUID, quantity int) error
}

// GatewayRedirect is the gateway's response to a payment initiation.
type GatewayRedirect struct {
	RequestID       string
	ExternalOrderID string
	PayURL          string
	ResultCode      int
	Message         string
}

// PaymentGateway talks to the external payment provider.
type PaymentGateway interface {
	// CreatePayment initiates a gateway payment and returns the redirect
	// the customer completes out of band. The gateway confirms the result
	// later through its callback endpoint.
	CreatePayment(ctx context.Context, orderID kernel.UUID, amount float64, description string) (GatewayRedirect, error)
}

// User is the account service's view of a customer.
type User struct {
	ID       kernel.UUID
	FullName string
	Email    string
	Phone    string
}

// UserClient talks to the account service.
type UserClient interface {
	// GetUser fetches the customer profile for order validation.
	GetUser(ctx context.Context, userID kernel.UUID) (User, error)
}
