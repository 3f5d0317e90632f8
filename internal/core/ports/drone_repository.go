package ports

import (
	"context"

	"fooddrone/internal/core/domain/model/drone"
	"fooddrone/internal/core/domain/model/kernel"
)

// DroneRepository defines the persistence contract for the drone fleet.
type DroneRepository interface {
	// Add persists a newly registered drone.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update persists changes to an existing drone.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// Get retrieves a drone by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// GetByCode retrieves a drone by its human-facing code.
	GetByCode(ctx context.Context, code string) (*drone.Drone, error)

	// GetAllAvailable retrieves every drone dispatchable right now:
	// available status with at least the minimum dispatch battery.
	GetAllAvailable(ctx context.Context) ([]*drone.Drone, error)

	// GetAll retrieves the whole fleet.
	GetAll(ctx context.Context) ([]*drone.Drone, error)

	// TryClaim atomically flips the drone from available to busy and
	// reports whether this caller won the claim. Concurrent dispatchers
	// racing for the same drone see exactly one true result.
	TryClaim(ctx context.Context, id kernel.UUID) (bool, error)
}
