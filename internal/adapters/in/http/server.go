// Package http provides the REST inbound adapter over echo.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the order and notification APIs.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getNotificationsHandler queries.GetNotificationsQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getNotificationsHandler:  getNotificationsHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}
	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	items, err := bindItems(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, restaurantID, items, body.SpecialInstructions)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - transitions an order.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body StatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid transition request: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation request: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetNotifications handles GET /api/v1/notifications/:userId - reads a
// user's inbox, optionally narrowed to unread entries via ?unread=true.
func (s *Server) GetNotifications(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	query, err := queries.NewGetNotificationsQuery(userID, ctx.QueryParam("unread") == "true")
	if err != nil {
		return badRequest(ctx, "Invalid inbox request: "+err.Error())
	}

	notifications, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve notifications",
		})
	}

	response := make([]Notification, len(notifications))
	for i, n := range notifications {
		response[i] = Notification{
			ID:        n.ID.String(),
			Kind:      string(n.Kind),
			Title:     n.Title,
			Body:      n.Body,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/restaurants/:id/orders/active -
// retrieves a restaurant's in-flight orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	query, err := queries.NewGetActiveOrdersQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid dashboard request: "+err.Error())
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:          o.ID.String(),
			OrderNumber: o.OrderNumber,
			CustomerID:  o.CustomerID.String(),
			Status:      o.Status.String(),
			TotalCents:  int64(o.TotalAmount.Amount()),
			CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{Status: "ok"})
}

// bindItems converts request line items into domain items.
func bindItems(items []NewOrderItem) ([]order.Item, error) {
	bound := make([]order.Item, 0, len(items))
	for _, item := range items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return nil, err
		}

		unitPrice, err := kernel.NewMoney(kernel.Cents(item.UnitPriceCents))
		if err != nil {
			return nil, err
		}

		domainItem, err := order.NewItem(menuItemID, item.Name, unitPrice, item.Quantity, item.Note)
		if err != nil {
			return nil, err
		}
		bound = append(bound, domainItem)
	}

	return bound, nil
}

// mapDomainError translates command failures into HTTP status codes:
// unknown order to 404, rejected transitions and cancellations to 409
// carrying the domain message, invalid values to 400.
func mapDomainError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: notFound.Error(),
		})
	}

	if errors.Is(err, order.ErrInvalidTransition) || errors.Is(err, order.ErrCannotCancel) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	if errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal error",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
