package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads a user's order history directly from the
// database. Lines are not loaded; the list view only needs the summary.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history reads.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, user_id, restaurant_id, total_price, status,
			payment_status, payment_method, drone_id,
			created_at, picked_up_at, delivered_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetOrderQueryResponse
		err := rows.Scan(
			&response.ID, &response.UserID, &response.RestaurantID,
			&response.TotalPrice, &response.Status,
			&response.PaymentStatus, &response.PaymentMethod, &response.DroneID,
			&response.CreatedAt, &response.PickedUpAt, &response.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, response)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
