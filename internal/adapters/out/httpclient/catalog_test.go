package httpclient_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"fooddrone/internal/adapters/out/httpclient"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogClient_GetProduct_Success(t *testing.T) {
	productID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/"+productID.String(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "` + productID.String() + `",
			"restaurantId": "` + restaurantID.String() + `",
			"name": "Pho Bo",
			"price": 5.5,
			"stock": 12
		}`))
	}))
	defer server.Close()

	client := httpclient.NewCatalogClient(server.URL)
	product, err := client.GetProduct(t.Context(), productID)

	require.NoError(t, err)
	assert.True(t, product.ID.IsEqual(productID))
	assert.True(t, product.RestaurantID.IsEqual(restaurantID))
	assert.Equal(t, "Pho Bo", product.Name)
	assert.InDelta(t, 5.5, product.Price, 0.001)
	assert.Equal(t, 12, product.Stock)
}

func TestCatalogClient_GetProduct_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := httpclient.NewCatalogClient(server.URL)
	_, err := client.GetProduct(t.Context(), kernel.NewUUID())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCatalogClient_ReduceStock_InsufficientStock(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"available": 1}`))
	}))
	defer server.Close()

	client := httpclient.NewCatalogClient(server.URL)
	err := client.ReduceStock(t.Context(), kernel.NewUUID(), 3)

	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Equal(t, int32(1), calls.Load(), "a stock denial must not be retried")
}

func TestCatalogClient_GetRestaurant_RetriesServerError(t *testing.T) {
	var calls atomic.Int32
	restaurantID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "` + restaurantID.String() + `",
			"name": "Quan Ngon",
			"address": "138 Nam Ky Khoi Nghia",
			"phone": "+842838251955"
		}`))
	}))
	defer server.Close()

	client := httpclient.NewCatalogClient(server.URL)
	restaurant, err := client.GetRestaurant(t.Context(), restaurantID)

	require.NoError(t, err)
	assert.Equal(t, "Quan Ngon", restaurant.Name)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestCatalogClient_ReduceStock_ServiceDown(t *testing.T) {
	server := httptest.NewServer(nil)
	server.Close()

	client := httpclient.NewCatalogClient(server.URL)
	err := client.ReduceStock(t.Context(), kernel.NewUUID(), 1)

	require.ErrorIs(t, err, errs.ErrExternalService)
}
