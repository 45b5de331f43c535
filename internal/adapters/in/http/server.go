// Package http exposes the order engine over a REST API. It maps request
// bodies onto commands and queries, resolves the acting identity from the
// bearer token, and translates domain error kinds onto HTTP status codes
// with a consistent error envelope.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// ErrorResponse is the error envelope every failing endpoint returns.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	assignHandler       commands.AssignDeliveryPersonCommandHandler

	getOrderHandler            queries.GetOrderQueryHandler
	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getAssignedOrdersHandler   queries.GetAssignedOrdersQueryHandler
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler
	orderStatsHandler          queries.OrderStatsHandler
	deliveryStatsHandler       queries.GetDeliveryStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers. orderStatsHandler accepts the cached decorator as well as the
// plain handler.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignHandler commands.AssignDeliveryPersonCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getAssignedOrdersHandler queries.GetAssignedOrdersQueryHandler,
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
	orderStatsHandler queries.OrderStatsHandler,
	deliveryStatsHandler queries.GetDeliveryStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateStatusHandler:        updateStatusHandler,
		assignHandler:              assignHandler,
		getOrderHandler:            getOrderHandler,
		getCustomerOrdersHandler:   getCustomerOrdersHandler,
		getAssignedOrdersHandler:   getAssignedOrdersHandler,
		getUnassignedOrdersHandler: getUnassignedOrdersHandler,
		orderStatsHandler:          orderStatsHandler,
		deliveryStatsHandler:       deliveryStatsHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1. Every route requires a bearer
// token; /health stays open for probes.
func (s *Server) RegisterRoutes(e *echo.Echo, tokens *TokenService) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", AuthMiddleware(tokens))
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/my", s.GetMyOrders)
	api.GET("/orders/assigned", s.GetAssignedOrders)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/assign", s.AssignDeliveryPerson)
	api.GET("/stats/orders", s.GetOrderStats)
	api.GET("/stats/delivery/:id", s.GetDeliveryStats)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type createOrderItemRequest struct {
	ClothingItemID string   `json:"clothingItemId"`
	Category       string   `json:"category"`
	Services       []string `json:"services"`
	Quantity       int      `json:"quantity"`
}

type createOrderRequest struct {
	Items               []createOrderItemRequest `json:"items"`
	PickupAddress       string                   `json:"pickupAddress"`
	DeliveryAddress     string                   `json:"deliveryAddress"`
	Notes               string                   `json:"notes"`
	ScheduledPickupTime *time.Time               `json:"scheduledPickupTime"`
}

// CreateOrder handles POST /api/v1/orders. Customers place orders for
// themselves; the customer id always comes from the token, never the body.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return s.fail(c, err)
	}
	if actor.Role != user.RoleCustomer {
		return s.fail(c, errs.NewForbiddenError(actor.ID.String(), "create order"))
	}

	var req createOrderRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]services.PricingLine, 0, len(req.Items))
	for _, item := range req.Items {
		line, lineErr := toPricingLine(item)
		if lineErr != nil {
			return s.fail(c, lineErr)
		}
		lines = append(lines, line)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actor.ID, lines,
		req.PickupAddress, req.DeliveryAddress, req.Notes, req.ScheduledPickupTime)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

func toPricingLine(item createOrderItemRequest) (services.PricingLine, error) {
	clothingItemID, err := kernel.UUIDFromString(item.ClothingItemID)
	if err != nil {
		return services.PricingLine{}, errs.NewValueIsInvalidErrorWithCause("clothingItemId", err)
	}
	category, err := catalog.CategoryFromString(item.Category)
	if err != nil {
		return services.PricingLine{}, err
	}

	serviceTypes := make([]catalog.ServiceType, 0, len(item.Services))
	for _, s := range item.Services {
		service, serviceErr := catalog.ServiceTypeFromString(s)
		if serviceErr != nil {
			return services.PricingLine{}, serviceErr
		}
		serviceTypes = append(serviceTypes, service)
	}

	return services.PricingLine{
		ClothingItemID: clothingItemID,
		Category:       category,
		Services:       serviceTypes,
		Quantity:       item.Quantity,
	}, nil
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return s.fail(c, err)
	}
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req updateStatusRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actor, target, req.Note)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.updateStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type assignRequest struct {
	DeliveryPersonID string `json:"deliveryPersonId"`
}

// AssignDeliveryPerson handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignDeliveryPerson(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return s.fail(c, err)
	}
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req assignRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	deliveryPersonID, err := kernel.UUIDFromString(req.DeliveryPersonID)
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("deliveryPersonId", err))
	}

	cmd, err := commands.NewAssignDeliveryPersonCommand(orderID, deliveryPersonID, actor)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.assignHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return s.fail(c, err)
	}
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetMyOrders handles GET /api/v1/orders/my, listing the calling customer's
// orders.
func (s *Server) GetMyOrders(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID, actor)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetAssignedOrders handles GET /api/v1/orders/assigned. Delivery personnel
// get their own workload; admins may scope to anyone with ?deliveryPersonId.
func (s *Server) GetAssignedOrders(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return s.fail(c, err)
	}

	deliveryPersonID := actor.ID
	if raw := c.QueryParam("deliveryPersonId"); raw != "" {
		deliveryPersonID, err = kernel.UUIDFromString(raw)
		if err != nil {
			return s.fail(c, errs.NewValueIsInvalidErrorWithCause("deliveryPersonId", err))
		}
	}

	query, err := queries.NewGetAssignedOrdersQuery(deliveryPersonID, actor)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.getAssignedOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned.
func (s *Server) GetUnassignedOrders(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetUnassignedOrdersQuery(actor)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.getUnassignedOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrderStats handles GET /api/v1/stats/orders.
func (s *Server) GetOrderStats(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderStatsQuery(actor)
	if err != nil {
		return s.fail(c, err)
	}

	stats, err := s.orderStatsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// GetDeliveryStats handles GET /api/v1/stats/delivery/:id.
func (s *Server) GetDeliveryStats(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return s.fail(c, err)
	}
	deliveryPersonID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetDeliveryStatsQuery(deliveryPersonID, actor)
	if err != nil {
		return s.fail(c, err)
	}

	stats, err := s.deliveryStatsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// fail maps a domain error kind onto its HTTP status and writes the error
// envelope.
func (s *Server) fail(c echo.Context, err error) error {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal detail stays in the logs.
		message = "Internal server error"
		c.Logger().Error(err)
	}

	return c.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrTokenIsInvalid), errors.Is(err, ErrTokenIsExpired):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPricingUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
