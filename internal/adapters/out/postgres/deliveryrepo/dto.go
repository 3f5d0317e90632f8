// Package deliveryrepo persists flight records for the motion simulator.
package deliveryrepo

import (
	"time"

	"fooddrone/internal/core/domain/model/delivery"
	"fooddrone/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO maps a flight record onto the deliveries table.
type DeliveryDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	DroneID          uuid.UUID `gorm:"type:uuid;index"`
	DroneCode        string    `gorm:"type:varchar(32)"`
	Status           string    `gorm:"type:varchar(16);index"`
	RestaurantLat    float64
	RestaurantLng    float64
	CustomerLat      float64
	CustomerLng      float64
	CurrentLat       float64
	CurrentLng       float64
	SpeedKmh         float64
	LegTotalKm       float64
	HalfwayNotified  bool
	EstimatedArrival *time.Time
	PickedUpAt       *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides GORM's naming convention.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		DroneID:          aggregate.DroneID().Bytes(),
		DroneCode:        aggregate.DroneCode(),
		Status:           aggregate.Status().String(),
		RestaurantLat:    aggregate.RestaurantLocation().Lat(),
		RestaurantLng:    aggregate.RestaurantLocation().Lng(),
		CustomerLat:      aggregate.CustomerLocation().Lat(),
		CustomerLng:      aggregate.CustomerLocation().Lng(),
		CurrentLat:       aggregate.CurrentLocation().Lat(),
		CurrentLng:       aggregate.CurrentLocation().Lng(),
		SpeedKmh:         aggregate.SpeedKmh(),
		LegTotalKm:       aggregate.LegTotalKm(),
		HalfwayNotified:  aggregate.HalfwayNotified(),
		EstimatedArrival: aggregate.EstimatedArrival(),
		PickedUpAt:       aggregate.PickedUpAt(),
		CompletedAt:      aggregate.CompletedAt(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	droneID, err := kernel.UUIDFromBytes(dto.DroneID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	restaurantLocation, err := kernel.NewGeoPoint(dto.RestaurantLat, dto.RestaurantLng)
	if err != nil {
		return nil, err
	}
	customerLocation, err := kernel.NewGeoPoint(dto.CustomerLat, dto.CustomerLng)
	if err != nil {
		return nil, err
	}
	currentLocation, err := kernel.NewGeoPoint(dto.CurrentLat, dto.CurrentLng)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, orderID, droneID,
		dto.DroneCode,
		status,
		restaurantLocation, customerLocation, currentLocation,
		dto.SpeedKmh, dto.LegTotalKm,
		dto.HalfwayNotified,
		dto.EstimatedArrival, dto.PickedUpAt, dto.CompletedAt,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
