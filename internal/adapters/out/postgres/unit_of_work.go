// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work is created per command, spans every repository the command
// touches, and maps Begin/Commit/Rollback onto one database transaction so
// a saga step either lands completely or not at all.
package postgres

import (
	"context"

	"fooddrone/internal/adapters/out/postgres/deliveryrepo"
	"fooddrone/internal/adapters/out/postgres/dronerepo"
	"fooddrone/internal/adapters/out/postgres/orderrepo"
	"fooddrone/internal/adapters/out/postgres/paymentrepo"
	"fooddrone/internal/adapters/out/postgres/restaurantrepo"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each Create call yields a fresh instance with its own
// transaction state, so concurrent commands stay isolated.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the repositories
// of a single command. Repositories obtained from it are bound to the
// running transaction when one is active.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again on an instance with an
// active transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. The instance cannot be reused after.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Deferred after a successful Commit it
// returns gorm.ErrInvalidTransaction, which callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PaymentRepository returns a payment repository bound to the transaction.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

// RestaurantOrderRepository returns a kitchen ticket repository bound to the
// transaction.
func (uow *GormUnitOfWork) RestaurantOrderRepository() ports.RestaurantOrderRepository {
	return restaurantrepo.NewGormRestaurantOrderRepository(uow.conn(), uow)
}

// DroneRepository returns a drone repository bound to the transaction.
func (uow *GormUnitOfWork) DroneRepository() ports.DroneRepository {
	return dronerepo.NewGormDroneRepository(uow.conn(), uow)
}

// DeliveryRepository returns a flight record repository bound to the
// transaction.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate modified within this unit of work.
// Repositories call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
