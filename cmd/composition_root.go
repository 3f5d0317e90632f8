package cmd

import (
	"log/slog"

	inbus "fooddrone/internal/adapters/in/bus"
	inhttp "fooddrone/internal/adapters/in/http"
	"fooddrone/internal/adapters/out/httpclient"
	"fooddrone/internal/adapters/out/postgres"
	"fooddrone/internal/core/application/usecases/commands"
	"fooddrone/internal/core/application/usecases/queries"
	"fooddrone/internal/core/domain/services"
	"fooddrone/internal/core/ports"
	"fooddrone/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into handlers. Handlers are created per
// request site; the shared pieces (database, bus, clients) live here.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	bus        ports.EventBus
	notifier   ports.Notifier
	catalog    ports.CatalogClient
	gateway    ports.PaymentGateway
	users      ports.UserClient
	dispatcher services.Dispatcher
	logger     *slog.Logger
}

// NewCompositionRoot assembles the root from the infrastructure pieces
// main has already opened.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	bus ports.EventBus,
	notifier ports.Notifier,
	logger *slog.Logger,
) *CompositionRoot {
	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		bus:        bus,
		notifier:   notifier,
		catalog:    httpclient.NewCatalogClient(config.CatalogServiceURL),
		gateway:    httpclient.NewPaymentGatewayClient(config.PaymentGatewayURL),
		users:      httpclient.NewUserClient(config.UserServiceURL),
		dispatcher: services.NewDispatcher(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactory, c.catalog, c.users, c.bus, c.logger)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	return commands.NewProcessPaymentCommandHandler(c.uowFactory, c.gateway, c.bus, c.logger)
}

func (c *CompositionRoot) CreateResolveGatewayCallbackCommandHandler() commands.ResolveGatewayCallbackCommandHandler {
	return commands.NewResolveGatewayCallbackCommandHandler(c.uowFactory, c.bus, c.logger)
}

func (c *CompositionRoot) CreateApplyPaymentResultCommandHandler() commands.ApplyPaymentResultCommandHandler {
	return commands.NewApplyPaymentResultCommandHandler(c.uowFactory, c.catalog, c.bus, c.logger)
}

func (c *CompositionRoot) CreateAcceptRestaurantOrderCommandHandler() commands.AcceptRestaurantOrderCommandHandler {
	return commands.NewAcceptRestaurantOrderCommandHandler(c.uowFactory, c.logger)
}

func (c *CompositionRoot) CreateConfirmRestaurantOrderCommandHandler() commands.ConfirmRestaurantOrderCommandHandler {
	return commands.NewConfirmRestaurantOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	return commands.NewMarkOrderReadyCommandHandler(c.uowFactory, c.catalog, c.bus)
}

func (c *CompositionRoot) CreateDispatchDroneCommandHandler() commands.DispatchDroneCommandHandler {
	return commands.NewDispatchDroneCommandHandler(c.uowFactory, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateMoveDronesCommandHandler() commands.MoveDronesCommandHandler {
	return commands.NewMoveDronesCommandHandler(c.uowFactory, c.bus, float64(c.config.TickSeconds), c.logger)
}

func (c *CompositionRoot) CreateApplyDeliveryProgressCommandHandler() commands.ApplyDeliveryProgressCommandHandler {
	return commands.NewApplyDeliveryProgressCommandHandler(c.uowFactory, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uowFactory, c.catalog, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateRegisterDroneCommandHandler() commands.RegisterDroneCommandHandler {
	return commands.NewRegisterDroneCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateRechargeDroneCommandHandler() commands.RechargeDroneCommandHandler {
	return commands.NewRechargeDroneCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderPaymentQueryHandler() queries.GetOrderPaymentQueryHandler {
	return queries.NewGetOrderPaymentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenOrdersQueryHandler() queries.GetKitchenOrdersQueryHandler {
	return queries.NewGetKitchenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDronesQueryHandler() queries.GetAllDronesQueryHandler {
	return queries.NewGetAllDronesQueryHandler(c.gormDB)
}

// CreateSubscriptions builds the saga subscription set and registers it on
// the bus.
func (c *CompositionRoot) CreateSubscriptions() *inbus.Subscriptions {
	subscriptions := inbus.NewSubscriptions(
		c.CreateProcessPaymentCommandHandler(),
		c.CreateApplyPaymentResultCommandHandler(),
		c.CreateAcceptRestaurantOrderCommandHandler(),
		c.CreateDispatchDroneCommandHandler(),
		c.CreateApplyDeliveryProgressCommandHandler(),
		c.notifier,
		c.logger,
	)
	subscriptions.Register(c.bus)
	return subscriptions
}

// CreateJobManager builds the scheduled job set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateMoveDronesCommandHandler(), c.config.TickSeconds, c.logger)
}

// CreateHTTPServer builds the REST surface.
func (c *CompositionRoot) CreateHTTPServer() *inhttp.Server {
	return inhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateConfirmRestaurantOrderCommandHandler(),
		c.CreateMarkOrderReadyCommandHandler(),
		c.CreateResolveGatewayCallbackCommandHandler(),
		c.CreateRegisterDroneCommandHandler(),
		c.CreateRechargeDroneCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetUserOrdersQueryHandler(),
		c.CreateGetOrderPaymentQueryHandler(),
		c.CreateGetKitchenOrdersQueryHandler(),
		c.CreateGetActiveDeliveriesQueryHandler(),
		c.CreateGetAllDronesQueryHandler(),
	)
}
