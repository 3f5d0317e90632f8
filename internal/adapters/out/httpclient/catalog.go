package httpclient

import (
	"context"
	"encoding/json"
	"net/http"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/ports"
	"fooddrone/internal/pkg/errs"
	"fooddrone/internal/pkg/resilience"
)

const catalogServiceName = "catalog"

// CatalogClient talks to the product catalog service over HTTP.
type CatalogClient struct {
	client client
	policy *resilience.Policy
}

// NewCatalogClient creates a catalog client for the given base URL.
func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		client: newClient(baseURL),
		policy: resilience.NewPolicy(catalogServiceName),
	}
}

type productResponse struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
}

type restaurantResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type stockRequest struct {
	Quantity int `json:"quantity"`
}

type stockDenialResponse struct {
	Available int `json:"available"`
}

// GetProduct fetches a product snapshot.
func (c *CatalogClient) GetProduct(ctx context.Context, productID kernel.UUID) (ports.Product, error) {
	var response productResponse
	denial, err := c.client.callJSON(ctx, c.policy,
		http.MethodGet, "/api/products/"+productID.String(), nil, &response)
	if err != nil {
		return ports.Product{}, errs.NewExternalServiceError(catalogServiceName, err)
	}
	if denial != nil {
		if denial.StatusCode == http.StatusNotFound {
			return ports.Product{}, errs.NewObjectNotFoundError("product", productID.String())
		}
		return ports.Product{}, errs.NewExternalServiceError(catalogServiceName, denial)
	}

	id, err := kernel.UUIDFromString(response.ID)
	if err != nil {
		return ports.Product{}, errs.NewExternalServiceError(catalogServiceName, err)
	}
	restaurantID, err := kernel.UUIDFromString(response.RestaurantID)
	if err != nil {
		return ports.Product{}, errs.NewExternalServiceError(catalogServiceName, err)
	}

	return ports.Product{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         response.Name,
		Price:        response.Price,
		Stock:        response.Stock,
	}, nil
}

// GetRestaurant fetches the restaurant profile.
func (c *CatalogClient) GetRestaurant(ctx context.Context, restaurantID kernel.UUID) (ports.Restaurant, error) {
	var response restaurantResponse
	denial, err := c.client.callJSON(ctx, c.policy,
		http.MethodGet, "/api/restaurants/"+restaurantID.String(), nil, &response)
	if err != nil {
		return ports.Restaurant{}, errs.NewExternalServiceError(catalogServiceName, err)
	}
	if denial != nil {
		if denial.StatusCode == http.StatusNotFound {
			return ports.Restaurant{}, errs.NewObjectNotFoundError("restaurant", restaurantID.String())
		}
		return ports.Restaurant{}, errs.NewExternalServiceError(catalogServiceName, denial)
	}

	id, err := kernel.UUIDFromString(response.ID)
	if err != nil {
		return ports.Restaurant{}, errs.NewExternalServiceError(catalogServiceName, err)
	}

	return ports.Restaurant{
		ID:      id,
		Name:    response.Name,
		Address: response.Address,
		Phone:   response.Phone,
	}, nil
}

// ReduceStock reserves quantity units of a product.
func (c *CatalogClient) ReduceStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	return c.mutateStock(ctx, productID, quantity, "reduce-stock")
}

// RestoreStock releases a reservation.
func (c *CatalogClient) RestoreStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	return c.mutateStock(ctx, productID, quantity, "restore-stock")
}

func (c *CatalogClient) mutateStock(ctx context.Context, productID kernel.UUID, quantity int, action string) error {
	denial, err := c.client.callJSON(ctx, c.policy,
		http.MethodPost, "/api/products/"+productID.String()+"/"+action,
		stockRequest{Quantity: quantity}, nil)
	if err != nil {
		return errs.NewExternalServiceError(catalogServiceName, err)
	}
	if denial == nil {
		return nil
	}

	switch denial.StatusCode {
	case http.StatusNotFound:
		return errs.NewObjectNotFoundError("product", productID.String())
	case http.StatusConflict:
		var body stockDenialResponse
		_ = json.Unmarshal(denial.Body, &body)
		return errs.NewInsufficientStockError(productID.String(), quantity, body.Available)
	default:
		return errs.NewExternalServiceError(catalogServiceName, denial)
	}
}
