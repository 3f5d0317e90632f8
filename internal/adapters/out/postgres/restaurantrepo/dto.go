// Package restaurantrepo persists the kitchen tickets restaurants work
// through.
package restaurantrepo

import (
	"time"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantOrderDTO maps a kitchen ticket onto the restaurant_orders table.
type RestaurantOrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	Status          string `gorm:"type:varchar(32)"`
	ConfirmedAt     *time.Time
	ReadyAt         *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides GORM's naming convention.
func (RestaurantOrderDTO) TableName() string {
	return "restaurant_orders"
}

func fromDomain(aggregate *restaurant.RestaurantOrder) RestaurantOrderDTO {
	return RestaurantOrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		CustomerName:    aggregate.Contact().FullName,
		CustomerPhone:   aggregate.Contact().Phone,
		DeliveryAddress: aggregate.Contact().Address,
		Status:          string(aggregate.Status()),
		ConfirmedAt:     aggregate.ConfirmedAt(),
		ReadyAt:         aggregate.ReadyAt(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

func toDomain(dto RestaurantOrderDTO) (*restaurant.RestaurantOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurantOrder(
		id, orderID, restaurantID,
		restaurant.Contact{
			FullName: dto.CustomerName,
			Phone:    dto.CustomerPhone,
			Address:  dto.DeliveryAddress,
		},
		restaurant.Status(dto.Status),
		dto.ConfirmedAt, dto.ReadyAt,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
