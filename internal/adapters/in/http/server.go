// Package http exposes the service's REST API on labstack/echo: command
// endpoints for the order lifecycle and read endpoints backed by the query
// handlers.
package http

import (
	"errors"
	"net/http"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	addParcelHandler     commands.AddParcelToOrderCommandHandler
	deleteParcelHandler  commands.DeleteParcelFromOrderCommandHandler
	approveOrderHandler  commands.ApproveOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler
	assignVehicleHandler commands.AssignVehicleCommandHandler

	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addParcelHandler commands.AddParcelToOrderCommandHandler,
	deleteParcelHandler commands.DeleteParcelFromOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	assignVehicleHandler commands.AssignVehicleCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		addParcelHandler:         addParcelHandler,
		deleteParcelHandler:      deleteParcelHandler,
		approveOrderHandler:      approveOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		deleteOrderHandler:       deleteOrderHandler,
		assignVehicleHandler:     assignVehicleHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
	}
}

// RegisterRoutes mounts the API on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", RequestContext())
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderID", s.GetOrder)
	api.DELETE("/orders/:orderID", s.DeleteOrder)
	api.POST("/orders/:orderID/parcels", s.AddParcel)
	api.DELETE("/orders/:orderID/parcels/:parcelID", s.DeleteParcel)
	api.POST("/orders/:orderID/approve", s.ApproveOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/vehicle", s.AssignVehicle)
	api.GET("/customers/:customerID/orders", s.GetCustomerOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createOrderRequest struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body createOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.ID != "" {
		parsed, err := kernel.UUIDFromString(body.ID)
		if err != nil {
			return badRequest(ctx, "invalid order id")
		}
		orderID = parsed
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID)
	if err != nil {
		return writeError(ctx, err)
	}
	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
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

// GetCustomerOrders handles GET /api/v1/customers/:customerID/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customerID")
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return writeError(ctx, err)
	}
	response, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type addParcelRequest struct {
	ParcelID string `json:"parcelId"`
}

// AddParcel handles POST /api/v1/orders/:orderID/parcels.
func (s *Server) AddParcel(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body addParcelRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	parcelID, err := kernel.UUIDFromString(body.ParcelID)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	cmd, err := commands.NewAddParcelToOrderCommand(orderID, parcelID)
	if err != nil {
		return writeError(ctx, err)
	}
	if err := s.addParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteParcel handles DELETE /api/v1/orders/:orderID/parcels/:parcelID.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	parcelID, err := pathUUID(ctx, "parcelID")
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	cmd, err := commands.NewDeleteParcelFromOrderCommand(orderID, parcelID)
	if err != nil {
		return writeError(ctx, err)
	}
	if err := s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveOrder handles POST /api/v1/orders/:orderID/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}
	if err := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body cancelOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Reason)
	if err != nil {
		return writeError(ctx, err)
	}
	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderID.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}
	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type assignVehicleRequest struct {
	VehicleID    string `json:"vehicleId"`
	DeliveryDate string `json:"deliveryDate"`
}

// AssignVehicle handles POST /api/v1/orders/:orderID/vehicle.
func (s *Server) AssignVehicle(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body assignVehicleRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	vehicleID, err := kernel.UUIDFromString(body.VehicleID)
	if err != nil {
		return badRequest(ctx, "invalid vehicle id")
	}
	deliveryDate, err := time.Parse(time.RFC3339, body.DeliveryDate)
	if err != nil {
		return badRequest(ctx, "invalid delivery date")
	}

	cmd, err := commands.NewAssignVehicleCommand(orderID, vehicleID, deliveryDate)
	if err != nil {
		return writeError(ctx, err)
	}
	if err := s.assignVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP statuses.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrDuplicateParcel),
		errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal error"
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: message})
}
