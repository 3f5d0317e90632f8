package dronerepo

import (
	"context"
	"errors"
	"time"

	"fooddrone/internal/core/domain/model/drone"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDroneRepository implements DroneRepository using GORM.
type GormDroneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDroneRepository creates a new GORM drone repository.
func NewGormDroneRepository(db *gorm.DB, tracker aggregateTracker) *GormDroneRepository {
	return &GormDroneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly registered drone to the database.
func (r *GormDroneRepository) Add(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("code", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing drone to the database. All columns are written
// so a battery drained to zero is persisted as zero.
func (r *GormDroneRepository) Update(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DroneDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("drone", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a drone by ID.
func (r *GormDroneRepository) Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DroneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("drone", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a drone by its human-facing code.
func (r *GormDroneRepository) GetByCode(ctx context.Context, code string) (*drone.Drone, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto DroneDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("drone", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves every drone dispatchable right now.
func (r *GormDroneRepository) GetAllAvailable(ctx context.Context) ([]*drone.Drone, error) {
	var dtos []DroneDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND battery >= ?", string(drone.StatusAvailable), drone.MinDispatchBattery).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves the whole fleet ordered by code.
func (r *GormDroneRepository) GetAll(ctx context.Context) ([]*drone.Drone, error) {
	var dtos []DroneDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// TryClaim atomically flips a drone from available to busy. The conditional
// UPDATE is the arbiter: of any number of dispatchers racing for the same
// drone, exactly one sees an affected row.
func (r *GormDroneRepository) TryClaim(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&DroneDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), string(drone.StatusAvailable)).
		Updates(map[string]any{
			"status":     string(drone.StatusBusy),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func toDomainSlice(dtos []DroneDTO) ([]*drone.Drone, error) {
	fleet := make([]*drone.Drone, 0, len(dtos))
	for _, dto := range dtos {
		vehicle, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		fleet = append(fleet, vehicle)
	}

	return fleet, nil
}
