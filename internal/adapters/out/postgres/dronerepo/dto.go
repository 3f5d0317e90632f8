// Package dronerepo persists the drone fleet. The claim that takes a drone
// off the available pool is a single compare-and-set UPDATE, which is what
// keeps concurrent dispatchers from double-booking a drone.
package dronerepo

import (
	"time"

	"fooddrone/internal/core/domain/model/drone"
	"fooddrone/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DroneDTO maps the drone aggregate onto the drones table.
type DroneDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code            string    `gorm:"type:varchar(32);uniqueIndex"`
	Status          string    `gorm:"type:varchar(16);index"`
	Battery         int
	Lat             float64
	Lng             float64
	SpeedKmh        float64
	TotalDeliveries int
	TotalDistanceKm float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides GORM's naming convention.
func (DroneDTO) TableName() string {
	return "drones"
}

func fromDomain(aggregate *drone.Drone) DroneDTO {
	return DroneDTO{
		ID:              aggregate.ID().Bytes(),
		Code:            aggregate.Code(),
		Status:          string(aggregate.Status()),
		Battery:         aggregate.Battery(),
		Lat:             aggregate.Location().Lat(),
		Lng:             aggregate.Location().Lng(),
		SpeedKmh:        aggregate.SpeedKmh(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		TotalDistanceKm: aggregate.TotalDistanceKm(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

func toDomain(dto DroneDTO) (*drone.Drone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	return drone.RestoreDrone(
		id,
		dto.Code,
		drone.Status(dto.Status),
		dto.Battery,
		location,
		dto.SpeedKmh,
		dto.TotalDeliveries,
		dto.TotalDistanceKm,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
