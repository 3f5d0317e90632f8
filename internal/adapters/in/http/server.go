// Package http exposes the service's REST surface on echo. Handlers only
// translate between HTTP and commands/queries; every business rule lives
// behind them.
package http

import (
	"errors"
	"net/http"

	"fooddrone/internal/core/application/usecases/commands"
	"fooddrone/internal/core/application/usecases/queries"
	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/order"
	"fooddrone/internal/core/domain/services"
	"fooddrone/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	confirmTicketHandler     commands.ConfirmRestaurantOrderCommandHandler
	markOrderReadyHandler    commands.MarkOrderReadyCommandHandler
	gatewayCallbackHandler   commands.ResolveGatewayCallbackCommandHandler
	registerDroneHandler     commands.RegisterDroneCommandHandler
	rechargeDroneHandler     commands.RechargeDroneCommandHandler

	getOrderHandler         queries.GetOrderQueryHandler
	getUserOrdersHandler    queries.GetUserOrdersQueryHandler
	getOrderPaymentHandler  queries.GetOrderPaymentQueryHandler
	getKitchenOrdersHandler queries.GetKitchenOrdersQueryHandler
	getActiveFlightsHandler queries.GetActiveDeliveriesQueryHandler
	getAllDronesHandler     queries.GetAllDronesQueryHandler
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	confirmTicketHandler commands.ConfirmRestaurantOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	gatewayCallbackHandler commands.ResolveGatewayCallbackCommandHandler,
	registerDroneHandler commands.RegisterDroneCommandHandler,
	rechargeDroneHandler commands.RechargeDroneCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getOrderPaymentHandler queries.GetOrderPaymentQueryHandler,
	getKitchenOrdersHandler queries.GetKitchenOrdersQueryHandler,
	getActiveFlightsHandler queries.GetActiveDeliveriesQueryHandler,
	getAllDronesHandler queries.GetAllDronesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		confirmTicketHandler:     confirmTicketHandler,
		markOrderReadyHandler:    markOrderReadyHandler,
		gatewayCallbackHandler:   gatewayCallbackHandler,
		registerDroneHandler:     registerDroneHandler,
		rechargeDroneHandler:     rechargeDroneHandler,
		getOrderHandler:          getOrderHandler,
		getUserOrdersHandler:     getUserOrdersHandler,
		getOrderPaymentHandler:   getOrderPaymentHandler,
		getKitchenOrdersHandler:  getKitchenOrdersHandler,
		getActiveFlightsHandler:  getActiveFlightsHandler,
		getAllDronesHandler:      getAllDronesHandler,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders/:id", s.GetOrder)
	e.PUT("/api/orders/:id/cancel", s.CancelOrder)
	e.PUT("/api/orders/:id/status", s.UpdateOrderStatus)
	e.GET("/api/users/:id/orders", s.GetUserOrders)

	e.PUT("/api/kitchen/orders/:orderId/confirm", s.ConfirmKitchenOrder)
	e.PUT("/api/kitchen/orders/:orderId/ready", s.MarkKitchenOrderReady)
	e.GET("/api/kitchen/restaurants/:restaurantId/orders", s.GetKitchenOrders)

	e.POST("/api/payments/gateway/callback", s.GatewayCallback)
	e.GET("/api/payments/order/:orderId", s.GetOrderPayment)

	e.POST("/api/drones", s.RegisterDrone)
	e.PUT("/api/drones/:id/recharge", s.RechargeDrone)
	e.GET("/api/drones", s.GetAllDrones)
	e.GET("/api/deliveries/active", s.GetActiveDeliveries)
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps the error taxonomy onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrInsufficientStock):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNoAvailableDrone):
		status = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrExternalService):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, apiError{Code: status, Message: err.Error()})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type orderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type deliveryInfoRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Notes    string `json:"notes"`
}

type createOrderRequest struct {
	UserID        string              `json:"userId"`
	RestaurantID  string              `json:"restaurantId"`
	Items         []orderItemRequest  `json:"items"`
	DeliveryInfo  deliveryInfoRequest `json:"deliveryInfo"`
	PaymentMethod string              `json:"paymentMethod"`
}

type createOrderResponse struct {
	OrderID string `json:"orderId"`
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("userId", err))
	}
	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("restaurantId", err))
	}

	items := make([]commands.OrderItemInput, 0, len(request.Items))
	for _, item := range request.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("productId", itemErr))
		}
		items = append(items, commands.OrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, userID, restaurantID,
		items,
		order.DeliveryInfo{
			FullName: request.DeliveryInfo.FullName,
			Phone:    request.DeliveryInfo.Phone,
			Address:  request.DeliveryInfo.Address,
			City:     request.DeliveryInfo.City,
			Notes:    request.DeliveryInfo.Notes,
		},
		request.PaymentMethod,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUserOrders handles GET /api/users/:id/orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type cancelOrderRequest struct {
	UserID string `json:"userId"`
}

// CancelOrder handles PUT /api/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var request cancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("userId", err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PUT /api/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var request updateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmKitchenOrder handles PUT /api/kitchen/orders/:orderId/confirm.
func (s *Server) ConfirmKitchenOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewConfirmRestaurantOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.confirmTicketHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkKitchenOrderReady handles PUT /api/kitchen/orders/:orderId/ready.
func (s *Server) MarkKitchenOrderReady(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetKitchenOrders handles GET /api/kitchen/restaurants/:restaurantId/orders.
func (s *Server) GetKitchenOrders(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("restaurantId", err))
	}

	query, err := queries.NewGetKitchenOrdersQuery(restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getKitchenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderPayment handles GET /api/payments/order/:orderId.
func (s *Server) GetOrderPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	query, err := queries.NewGetOrderPaymentQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderPaymentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type gatewayCallbackRequest struct {
	OrderID       string `json:"orderId"`
	RequestID     string `json:"requestId"`
	ResultCode    int    `json:"resultCode"`
	TransactionID string `json:"transactionId"`
	Message       string `json:"message"`
}

// GatewayCallback handles POST /api/payments/gateway/callback. The provider
// retries callbacks, so a replay resolves to 200 without side effects.
func (s *Server) GatewayCallback(ctx echo.Context) error {
	var request gatewayCallbackRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewResolveGatewayCallbackCommand(
		orderID, request.RequestID, request.ResultCode, request.TransactionID, request.Message)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.gatewayCallbackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type registerDroneRequest struct {
	Code string  `json:"code"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type registerDroneResponse struct {
	DroneID string `json:"droneId"`
}

// RegisterDrone handles POST /api/drones.
func (s *Server) RegisterDrone(ctx echo.Context) error {
	var request registerDroneRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	home, err := kernel.NewGeoPoint(request.Lat, request.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	droneID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDroneCommand(droneID, request.Code, home)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerDroneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, registerDroneResponse{DroneID: droneID.String()})
}

// RechargeDrone handles PUT /api/drones/:id/recharge.
func (s *Server) RechargeDrone(ctx echo.Context) error {
	droneID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewRechargeDroneCommand(droneID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.rechargeDroneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAllDrones handles GET /api/drones.
func (s *Server) GetAllDrones(ctx echo.Context) error {
	fleet, err := s.getAllDronesHandler.Handle(ctx.Request().Context(), queries.NewGetAllDronesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fleet)
}

// GetActiveDeliveries handles GET /api/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	flights, err := s.getActiveFlightsHandler.Handle(ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, flights)
}
