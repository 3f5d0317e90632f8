package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetKitchenOrdersQueryHandler reads a restaurant's kitchen tickets directly
// from the database.
type GetKitchenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenOrdersQueryHandler creates a handler for kitchen ticket reads.
func NewGetKitchenOrdersQueryHandler(db *gorm.DB) GetKitchenOrdersQueryHandler {
	return GetKitchenOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetKitchenOrdersQueryHandler) Handle(ctx context.Context, query GetKitchenOrdersQuery) ([]KitchenOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tickets := make([]KitchenOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, customer_name, customer_phone, delivery_address,
		       status, confirmed_at, ready_at, created_at
		FROM restaurant_orders
		WHERE restaurant_id = ?
		ORDER BY created_at
	`, query.RestaurantID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response KitchenOrderResponse
		err := rows.Scan(
			&response.ID, &response.OrderID,
			&response.CustomerName, &response.CustomerPhone, &response.DeliveryAddress,
			&response.Status,
			&response.ConfirmedAt, &response.ReadyAt, &response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, response)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
