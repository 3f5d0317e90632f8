package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddrone/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and its lines directly from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, user_id, restaurant_id, total_price, status,
			payment_status, payment_method, drone_id,
			created_at, picked_up_at, delivered_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&response.ID, &response.UserID, &response.RestaurantID,
		&response.TotalPrice, &response.Status,
		&response.PaymentStatus, &response.PaymentMethod, &response.DroneID,
		&response.CreatedAt, &response.PickedUpAt, &response.DeliveredAt,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, product_name, quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_name
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return GetOrderQueryResponse{}, err
		}
		response.Items = append(response.Items, item)
	}
	if err := rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
