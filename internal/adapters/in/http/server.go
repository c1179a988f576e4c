// Package http exposes the order management REST API.
// Handlers translate between the wire contracts and the application's
// commands and queries; domain errors map onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler
	addItemHandler     commands.AddItemCommandHandler
	updateItemHandler  commands.UpdateItemCommandHandler
	deleteItemHandler  commands.DeleteItemCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	getItemHandler    queries.GetItemQueryHandler
	listItemsHandler  queries.ListItemsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	updateItemHandler commands.UpdateItemCommandHandler,
	deleteItemHandler commands.DeleteItemCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getItemHandler queries.GetItemQueryHandler,
	listItemsHandler queries.ListItemsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		updateOrderHandler: updateOrderHandler,
		deleteOrderHandler: deleteOrderHandler,
		cancelOrderHandler: cancelOrderHandler,
		addItemHandler:     addItemHandler,
		updateItemHandler:  updateItemHandler,
		deleteItemHandler:  deleteItemHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
		getItemHandler:     getItemHandler,
		listItemsHandler:   listItemsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Index)
	e.GET("/health", s.Health)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.ListOrders)
	e.GET("/orders/:order_id", s.GetOrder)
	e.PUT("/orders/:order_id", s.UpdateOrder)
	e.DELETE("/orders/:order_id", s.DeleteOrder)
	e.PUT("/orders/:order_id/cancel", s.CancelOrder)

	e.POST("/orders/:order_id/items", s.CreateItem)
	e.GET("/orders/:order_id/items", s.ListItems)
	e.GET("/orders/:order_id/items/:item_id", s.GetItem)
	e.PUT("/orders/:order_id/items/:item_id", s.UpdateItem)
	e.DELETE("/orders/:order_id/items/:item_id", s.DeleteItem)
}

// Index handles GET / - service metadata.
func (s *Server) Index(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, IndexResponse{
		Name:    "Order Management REST API Service",
		Version: "1.0",
		Paths:   "/orders",
	})
}

// Health handles GET /health - liveness check.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /orders - creates a new order, nested items
// included. Status defaults to OPEN when omitted. Responds 201 with the
// serialized order and a Location header.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	fields, err := parseOrderFields(req.Date, req.Total, req.Payment, req.Address, req.CustomerID, req.Status, false)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.CreateOrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		itemInput, itemErr := parseItemFields(itemReq)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		items = append(items, commands.CreateOrderItem{
			ItemID:    kernel.NewUUID(),
			ProductID: itemInput.productID,
			Quantity:  itemInput.quantity,
			Total:     itemInput.total,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		fields.date,
		fields.total,
		fields.payment,
		fields.address,
		fields.customerID,
		fields.status,
		items,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/orders/"+created.ID().String())
	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(created))
}

// ListOrders handles GET /orders - lists orders, optionally filtered by
// customer_id and status query parameters. Filters intersect.
func (s *Server) ListOrders(ctx echo.Context) error {
	var customerID *int
	if raw := ctx.QueryParam("customer_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("customer_id", err))
		}
		customerID = &parsed
	}

	status := order.StatusUnknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = parsed
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery(customerID, status))
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(result))
	for _, resp := range result {
		response = append(response, orderResponseFromQuery(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/:order_id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(resp))
}

// UpdateOrder handles PUT /orders/:order_id - replaces an order's header
// fields. Status is required; an items key in the payload is ignored.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	fields, err := parseOrderFields(req.Date, req.Total, req.Payment, req.Address, req.CustomerID, req.Status, true)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID,
		fields.date,
		fields.total,
		fields.payment,
		fields.address,
		fields.customerID,
		fields.status,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// DeleteOrder handles DELETE /orders/:order_id - removes an order and its
// items. Responds 204 regardless of whether the order existed.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		// Nothing to delete under a malformed identifier.
		return ctx.NoContent(http.StatusNoContent)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles PUT /orders/:order_id/cancel - cancels an OPEN order.
// Responds 409 when the order is in any other status.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(cancelled))
}

// CreateItem handles POST /orders/:order_id/items - adds an item to an
// order. Responds 409 when the order is cancelled.
func (s *Server) CreateItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req ItemRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	fields, err := parseItemFields(req)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddItemCommand(orderID, kernel.NewUUID(), fields.productID, fields.quantity, fields.total)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation,
		"/orders/"+orderID.String()+"/items/"+item.ID().String())
	return ctx.JSON(http.StatusCreated, itemResponseFromDomain(item))
}

// ListItems handles GET /orders/:order_id/items - lists an order's items.
func (s *Server) ListItems(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListItemsQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ItemResponse, 0, len(result))
	for _, resp := range result {
		response = append(response, itemResponseFromQuery(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetItem handles GET /orders/:order_id/items/:item_id - retrieves one item.
func (s *Server) GetItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := parseUUIDParam(ctx, "item_id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetItemQuery(orderID, itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemResponseFromQuery(resp))
}

// UpdateItem handles PUT /orders/:order_id/items/:item_id - replaces an
// item's mutable fields.
func (s *Server) UpdateItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := parseUUIDParam(ctx, "item_id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req ItemRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	fields, err := parseItemFields(req)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateItemCommand(orderID, itemID, fields.productID, fields.quantity, fields.total)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.updateItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemResponseFromDomain(item))
}

// DeleteItem handles DELETE /orders/:order_id/items/:item_id - removes an
// item. Responds 204 regardless of whether the order or item existed.
func (s *Server) DeleteItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	itemID, err := parseUUIDParam(ctx, "item_id")
	if err != nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	cmd, err := commands.NewDeleteItemCommand(orderID, itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type orderFields struct {
	date       time.Time
	total      float64
	payment    order.Payment
	address    string
	customerID int
	status     order.Status
}

func parseOrderFields(
	date *string,
	total *float64,
	payment *string,
	address *string,
	customerID *int,
	status *string,
	statusRequired bool,
) (orderFields, error) {
	var missing []error
	if date == nil {
		missing = append(missing, errs.NewValueIsRequiredError("date"))
	}
	if total == nil {
		missing = append(missing, errs.NewValueIsRequiredError("total"))
	}
	if payment == nil {
		missing = append(missing, errs.NewValueIsRequiredError("payment"))
	}
	if address == nil {
		missing = append(missing, errs.NewValueIsRequiredError("address"))
	}
	if customerID == nil {
		missing = append(missing, errs.NewValueIsRequiredError("customer_id"))
	}
	if statusRequired && status == nil {
		missing = append(missing, errs.NewValueIsRequiredError("status"))
	}
	if err := errors.Join(missing...); err != nil {
		return orderFields{}, err
	}

	parsedDate, err := time.Parse(dateLayout, *date)
	if err != nil {
		return orderFields{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}

	parsedPayment, err := order.PaymentFromString(*payment)
	if err != nil {
		return orderFields{}, err
	}

	parsedStatus := order.Open
	if status != nil {
		parsedStatus, err = order.StatusFromString(*status)
		if err != nil {
			return orderFields{}, err
		}
	}

	return orderFields{
		date:       parsedDate,
		total:      *total,
		payment:    parsedPayment,
		address:    *address,
		customerID: *customerID,
		status:     parsedStatus,
	}, nil
}

type itemFields struct {
	productID int
	quantity  int
	total     float64
}

func parseItemFields(req ItemRequest) (itemFields, error) {
	var missing []error
	if req.ProductID == nil {
		missing = append(missing, errs.NewValueIsRequiredError("product_id"))
	}
	if req.Quantity == nil {
		missing = append(missing, errs.NewValueIsRequiredError("quantity"))
	}
	if req.Total == nil {
		missing = append(missing, errs.NewValueIsRequiredError("total"))
	}
	if err := errors.Join(missing...); err != nil {
		return itemFields{}, err
	}

	return itemFields{
		productID: *req.ProductID,
		quantity:  *req.Quantity,
		total:     *req.Total,
	}, nil
}

// parseUUIDParam reads a UUID path parameter. A malformed value cannot name
// any stored object, so it surfaces as not-found rather than bad-request.
func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	raw := ctx.Param(name)
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundError(name, raw)
	}
	return id, nil
}

// respondError maps domain errors onto HTTP status codes.
// echo's own errors (unsupported media type, method not allowed) pass
// through to the default handler untouched.
func respondError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrStateConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}
