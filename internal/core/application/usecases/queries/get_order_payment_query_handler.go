package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddrone/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderPaymentQueryHandler reads an order's payment attempt directly from
// the database.
type GetOrderPaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderPaymentQueryHandler creates a handler for payment reads.
func NewGetOrderPaymentQueryHandler(db *gorm.DB) GetOrderPaymentQueryHandler {
	return GetOrderPaymentQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderPaymentQueryHandler) Handle(ctx context.Context, query GetOrderPaymentQuery) (GetOrderPaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderPaymentQueryResponse{}, err
	}

	var response GetOrderPaymentQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, order_id, amount, status, method,
			gateway_pay_url, gateway_transaction_id, gateway_message,
			created_at
		FROM payments
		WHERE order_id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&response.ID, &response.OrderID, &response.Amount,
		&response.Status, &response.Method,
		&response.PayURL, &response.TransactionID, &response.Message,
		&response.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return GetOrderPaymentQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return GetOrderPaymentQueryResponse{}, err
	}

	return response, nil
}
