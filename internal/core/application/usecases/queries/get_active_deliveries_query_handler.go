package queries

import (
	"context"

	"fooddrone/internal/core/domain/model/delivery"
	"fooddrone/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler reads every in-flight delivery directly
// from the database. The remaining distance is derived from the stored
// coordinates against the current leg's waypoint.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for the fleet view.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	flights := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, order_id, drone_code, status,
			current_lat, current_lng,
			restaurant_lat, restaurant_lng,
			customer_lat, customer_lng,
			estimated_arrival
		FROM deliveries
		WHERE status IN (?, ?)
		ORDER BY created_at
	`, delivery.PickingUp.String(), delivery.Delivering.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			response                     GetActiveDeliveriesQueryResponse
			restaurantLat, restaurantLng float64
			customerLat, customerLng     float64
		)
		err := rows.Scan(
			&response.ID, &response.OrderID, &response.DroneCode, &response.Status,
			&response.CurrentLat, &response.CurrentLng,
			&restaurantLat, &restaurantLng,
			&customerLat, &customerLng,
			&response.EstimatedArrival,
		)
		if err != nil {
			return nil, err
		}

		current, err := kernel.NewGeoPoint(response.CurrentLat, response.CurrentLng)
		if err != nil {
			return nil, err
		}
		targetLat, targetLng := customerLat, customerLng
		if response.Status == delivery.PickingUp.String() {
			targetLat, targetLng = restaurantLat, restaurantLng
		}
		target, err := kernel.NewGeoPoint(targetLat, targetLng)
		if err != nil {
			return nil, err
		}
		response.DistanceRemainingKm = current.DistanceTo(target)

		flights = append(flights, response)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return flights, nil
}
