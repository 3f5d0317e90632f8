package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllDronesQueryHandler reads the fleet directly from the database.
type GetAllDronesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDronesQueryHandler creates a handler for fleet reads.
func NewGetAllDronesQueryHandler(db *gorm.DB) GetAllDronesQueryHandler {
	return GetAllDronesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllDronesQueryHandler) Handle(ctx context.Context, query GetAllDronesQuery) ([]GetAllDronesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fleet := make([]GetAllDronesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, code, status, battery, lat, lng,
			speed_kmh, total_deliveries, total_distance_km
		FROM drones
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllDronesQueryResponse
		err := rows.Scan(
			&response.ID, &response.Code, &response.Status, &response.Battery,
			&response.Lat, &response.Lng,
			&response.SpeedKmh, &response.TotalDeliveries, &response.TotalDistanceKm,
		)
		if err != nil {
			return nil, err
		}
		fleet = append(fleet, response)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fleet, nil
}
