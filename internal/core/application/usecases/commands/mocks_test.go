package commands_test

import (
	"context"

	"fooddrone/internal/core/domain/model/delivery"
	"fooddrone/internal/core/domain/model/drone"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/order"
	"fooddrone/internal/core/domain/model/payment"
	"fooddrone/internal/core/domain/model/restaurant"
	"fooddrone/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockRestaurantOrderRepository struct{ mock.Mock }

func (m *MockRestaurantOrderRepository) Add(ctx context.Context, r *restaurant.RestaurantOrder) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRestaurantOrderRepository) Update(ctx context.Context, r *restaurant.RestaurantOrder) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRestaurantOrderRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.RestaurantOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.RestaurantOrder), args.Error(1)
}
func (m *MockRestaurantOrderRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*restaurant.RestaurantOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.RestaurantOrder), args.Error(1)
}
type MockDroneRepository struct{ mock.Mock }

func (m *MockDroneRepository) Add(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDroneRepository) Update(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDroneRepository) Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}
func (m *MockDroneRepository) GetByCode(ctx context.Context, code string) (*drone.Drone, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}
func (m *MockDroneRepository) GetAllAvailable(ctx context.Context) ([]*drone.Drone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}
func (m *MockDroneRepository) GetAll(ctx context.Context) ([]*drone.Drone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}
func (m *MockDroneRepository) TryClaim(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetAllActive(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

// MockUnitOfWork hands out whichever repositories a test wires in. Begin,
// Commit and Rollback only count calls; transaction semantics are the
// adapter's concern, not the handlers'.
type MockUnitOfWork struct {
	mock.Mock
	Orders           *MockOrderRepository
	Payments         *MockPaymentRepository
	RestaurantOrders *MockRestaurantOrderRepository
	Drones           *MockDroneRepository
	Deliveries       *MockDeliveryRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Orders:           new(MockOrderRepository),
		Payments:         new(MockPaymentRepository),
		RestaurantOrders: new(MockRestaurantOrderRepository),
		Drones:           new(MockDroneRepository),
		Deliveries:       new(MockDeliveryRepository),
	}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Rollback(_ context.Context) error { return nil }

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository             { return m.Orders }
func (m *MockUnitOfWork) PaymentRepository() ports.PaymentRepository         { return m.Payments }
func (m *MockUnitOfWork) RestaurantOrderRepository() ports.RestaurantOrderRepository {
	return m.RestaurantOrders
}
func (m *MockUnitOfWork) DroneRepository() ports.DroneRepository       { return m.Drones }
func (m *MockUnitOfWork) DeliveryRepository() ports.DeliveryRepository { return m.Deliveries }

type MockUnitOfWorkFactory struct {
	UoW *MockUnitOfWork
}

func (f *MockUnitOfWorkFactory) Create() ports.UnitOfWork { return f.UoW }

// MockEventBus records published payloads per topic.
type MockEventBus struct{ mock.Mock }

func (m *MockEventBus) Publish(ctx context.Context, topic string, payload []byte) error {
	args := m.Called(ctx, topic, payload)
	return args.Error(0)
}
func (m *MockEventBus) Subscribe(topic string, handler ports.EventHandler) {
	m.Called(topic, handler)
}
func (m *MockEventBus) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockEventBus) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockCatalogClient struct{ mock.Mock }

func (m *MockCatalogClient) GetProduct(ctx context.Context, productID kernel.UUID) (ports.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(ports.Product), args.Error(1)
}
func (m *MockCatalogClient) GetRestaurant(ctx context.Context, restaurantID kernel.UUID) (ports.Restaurant, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(ports.Restaurant), args.Error(1)
}
func (m *MockCatalogClient) ReduceStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}
func (m *MockCatalogClient) RestoreStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

type MockUserClient struct{ mock.Mock }

func (m *MockUserClient) GetUser(ctx context.Context, userID kernel.UUID) (ports.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(ports.User), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreatePayment(ctx context.Context, orderID kernel.UUID, amount float64, description string) (ports.GatewayRedirect, error) {
	args := m.Called(ctx, orderID, amount, description)
	return args.Get(0).(ports.GatewayRedirect), args.Error(1)
}
