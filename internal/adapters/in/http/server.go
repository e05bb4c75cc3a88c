// Package http exposes the order lifecycle operations to the storefront
// dashboard over Echo. Every operation response carries a discriminated
// success/error shape so the caller can branch without inspecting HTTP
// status codes alone.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderForUpdateHandler   queries.GetOrderForUpdateQueryHandler
	getOrderWithHistoryHandler queries.GetOrderWithHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderForUpdateHandler queries.GetOrderForUpdateQueryHandler,
	getOrderWithHistoryHandler queries.GetOrderWithHistoryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		getOrderForUpdateHandler:   getOrderForUpdateHandler,
		getOrderWithHistoryHandler: getOrderWithHistoryHandler,
	}
}

// RegisterRoutes attaches the dashboard operations to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	api.GET("/orders/:orderId/edit", s.GetOrderForUpdate)
	api.GET("/orders/:orderId/history", s.GetOrderWithHistory)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderId/status.
// Moves one order to a new lifecycle state, recording the transition in
// the status history ledger.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, newStatus, req.Comment)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OperationResponse{Success: true})
}

// CreateOrder handles POST /api/v1/orders.
// Registers a new order in the created state with its line items.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return writeError(ctx, err)
		}

		item, err := order.NewItem(productID, line.Quantity, line.Comment)
		if err != nil {
			return writeError(ctx, err)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, items)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OperationResponse: OperationResponse{Success: true},
		OrderID:           orderID.String(),
	})
}

// GetOrderForUpdate handles GET /api/v1/orders/:orderId/edit.
// Returns the order's items resolved against the live catalog plus the
// full catalog for the selection list.
func (s *Server) GetOrderForUpdate(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderForUpdateQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderForUpdateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]OrderItemView, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, OrderItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price.String(),
			Quantity:  item.Quantity,
			Comment:   item.Comment,
			Known:     item.Known,
		})
	}

	catalog := make([]CatalogProductView, 0, len(result.Catalog))
	for _, p := range result.Catalog {
		catalog = append(catalog, CatalogProductView{
			ID:    p.ID.String(),
			Name:  p.Name,
			Price: p.Price.String(),
		})
	}

	return ctx.JSON(http.StatusOK, GetOrderForUpdateResponse{
		OperationResponse: OperationResponse{Success: true},
		Order: OrderForUpdateView{
			ID:     result.ID.String(),
			Status: result.Status,
			Items:  items,
			Total:  result.Total.String(),
		},
		Catalog: catalog,
	})
}

// GetOrderWithHistory handles GET /api/v1/orders/:orderId/history.
// Returns the order together with its full transition history, oldest
// entry first.
func (s *Server) GetOrderWithHistory(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderWithHistoryQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderWithHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	history := make([]StatusChangeView, 0, len(result.History))
	for _, entry := range result.History {
		history = append(history, StatusChangeView{
			ID:         entry.ID.String(),
			Previous:   entry.Previous,
			Next:       entry.Next,
			Comment:    entry.Comment,
			OccurredAt: entry.OccurredAt,
		})
	}

	return ctx.JSON(http.StatusOK, GetOrderWithHistoryResponse{
		OperationResponse: OperationResponse{Success: true},
		Order: OrderSummaryView{
			ID:     result.ID.String(),
			Status: result.Status,
		},
		History: history,
	})
}

func parseOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderId"))
}

// writeError maps the application error taxonomy onto HTTP status codes:
// unknown object → 404 NotFound, invalid or missing value → 400
// ValidationError, anything else → 500 PersistenceError.
func writeError(ctx echo.Context, err error) error {
	code := "PersistenceError"
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = "NotFound"
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = "ValidationError"
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, OperationResponse{
		Success: false,
		Error: &OperationError{
			Code:    code,
			Message: err.Error(),
		},
	})
}
