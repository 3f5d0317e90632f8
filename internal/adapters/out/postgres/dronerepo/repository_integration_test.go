package dronerepo_test

import (
	"context"
	"testing"
	"time"

	"fooddrone/internal/adapters/out/postgres/dronerepo"
	"fooddrone/internal/core/domain/model/drone"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// DroneRepositoryIntegrationTestSuite verifies fleet persistence and the
// atomic claim against a real PostgreSQL container.
type DroneRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *dronerepo.GormDroneRepository
	tracker    *MockAggregateTracker
}

func (suite *DroneRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&dronerepo.DroneDTO{}))
}

func (suite *DroneRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drones").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = dronerepo.NewGormDroneRepository(suite.db, suite.tracker)
}

func (suite *DroneRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DroneRepositoryIntegrationTestSuite) createTestDrone(code string) *drone.Drone {
	home, err := kernel.NewGeoPoint(10.7769, 106.7009)
	suite.Require().NoError(err)

	vehicle, err := drone.NewDrone(kernel.NewUUID(), code, home)
	suite.Require().NoError(err)
	return vehicle
}

func (suite *DroneRepositoryIntegrationTestSuite) TestAdd_DuplicateCode_ReturnsConflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestDrone("DRONE-001")))

	err := suite.repository.Add(ctx, suite.createTestDrone("DRONE-001"))
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *DroneRepositoryIntegrationTestSuite) TestGetByCode_RoundTrips() {
	ctx := context.Background()
	vehicle := suite.createTestDrone("DRONE-002")
	suite.Require().NoError(suite.repository.Add(ctx, vehicle))

	restored, err := suite.repository.GetByCode(ctx, "DRONE-002")
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(vehicle.ID()))
	suite.Equal(drone.StatusAvailable, restored.Status())
	suite.Equal(100, restored.Battery())
	suite.InDelta(10.7769, restored.Location().Lat(), 0.000001)
}

func (suite *DroneRepositoryIntegrationTestSuite) TestTryClaim_SecondClaimLoses() {
	ctx := context.Background()
	vehicle := suite.createTestDrone("DRONE-003")
	suite.Require().NoError(suite.repository.Add(ctx, vehicle))

	won, err := suite.repository.TryClaim(ctx, vehicle.ID())
	suite.Require().NoError(err)
	suite.True(won)

	won, err = suite.repository.TryClaim(ctx, vehicle.ID())
	suite.Require().NoError(err)
	suite.False(won)

	restored, err := suite.repository.Get(ctx, vehicle.ID())
	suite.Require().NoError(err)
	suite.Equal(drone.StatusBusy, restored.Status())
}

func (suite *DroneRepositoryIntegrationTestSuite) TestGetAllAvailable_FiltersStatusAndBattery() {
	ctx := context.Background()

	ready := suite.createTestDrone("DRONE-010")
	suite.Require().NoError(suite.repository.Add(ctx, ready))

	claimed := suite.createTestDrone("DRONE-011")
	suite.Require().NoError(suite.repository.Add(ctx, claimed))
	won, err := suite.repository.TryClaim(ctx, claimed.ID())
	suite.Require().NoError(err)
	suite.Require().True(won)

	drained := suite.createTestDrone("DRONE-012")
	suite.Require().NoError(suite.repository.Add(ctx, drained))
	suite.Require().NoError(suite.db.
		Model(&dronerepo.DroneDTO{}).
		Where("id = ?", drained.ID().Bytes()).
		Update("battery", drone.MinDispatchBattery-1).Error)

	available, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.True(available[0].ID().IsEqual(ready.ID()))
}

func (suite *DroneRepositoryIntegrationTestSuite) TestUpdate_DrainedBatteryPersistsAsZero() {
	ctx := context.Background()
	vehicle := suite.createTestDrone("DRONE-020")
	suite.Require().NoError(suite.repository.Add(ctx, vehicle))

	suite.Require().NoError(vehicle.RecordDelivery(120.0))
	suite.Require().NoError(suite.repository.Update(ctx, vehicle))

	restored, err := suite.repository.Get(ctx, vehicle.ID())
	suite.Require().NoError(err)
	suite.Equal(0, restored.Battery())
	suite.Greater(restored.TotalDistanceKm(), 100.0)
}

func TestDroneRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DroneRepositoryIntegrationTestSuite))
}
