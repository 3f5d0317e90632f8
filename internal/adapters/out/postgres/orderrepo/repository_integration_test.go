package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddrone/internal/adapters/out/postgres/orderrepo"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/order"
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

// OrderRepositoryIntegrationTestSuite verifies order persistence round trips
// against a real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	item1, err := order.NewItem(kernel.NewUUID(), "Pho Bo", 2, 5.5)
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), "Spring Rolls", 1, 4.0)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item1, item2},
		order.DeliveryInfo{
			FullName: "Tran Van A",
			Phone:    "+84901234567",
			Address:  "12 Nguyen Hue",
			City:     "Ho Chi Minh City",
		},
		"CASH",
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsWithLines() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var orderCount, itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(2), itemCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(testOrder.ID()))
	suite.True(restored.UserID().IsEqual(testOrder.UserID()))
	suite.Equal(order.New, restored.Status())
	suite.Equal(order.PaymentPending, restored.PaymentStatus())
	suite.InDelta(15.0, restored.TotalPrice(), 0.001)
	suite.Len(restored.Items(), 2)
	suite.Equal("Tran Van A", restored.DeliveryInfo().FullName)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChange_Persists() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ConfirmPayment())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, restored.Status())
	suite.Equal(order.PaymentSuccess, restored.PaymentStatus())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByUser_ReturnsOnlyOwnOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	mine := suite.createTestOrder()
	other := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	orders, err := suite.repository.GetAllByUser(ctx, mine.UserID())
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID().IsEqual(mine.ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
