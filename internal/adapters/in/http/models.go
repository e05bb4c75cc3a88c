package http

import "time"

// OperationResponse is the discriminated envelope of every operation.
// Success is true on the happy path; on failure Error carries the
// machine-readable code and a human-readable message.
type OperationResponse struct {
	Success bool            `json:"success"`
	Error   *OperationError `json:"error,omitempty"`
}

// OperationError describes a failed operation.
// Code is one of "NotFound", "ValidationError", "PersistenceError".
type OperationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ChangeOrderStatusRequest is the body of POST /orders/:orderId/status.
type ChangeOrderStatusRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Items []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one requested line item.
type CreateOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Comment   string `json:"comment"`
}

// CreateOrderResponse reports the id assigned to a newly created order.
type CreateOrderResponse struct {
	OperationResponse
	OrderID string `json:"orderId"`
}

// OrderItemView is one order line resolved against the live catalog.
type OrderItemView struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Comment   string `json:"comment,omitempty"`
	Known     bool   `json:"known"`
}

// CatalogProductView is one selectable catalog product.
type CatalogProductView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// OrderForUpdateView is the edit-ready representation of an order.
type OrderForUpdateView struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Items  []OrderItemView `json:"items"`
	Total  string          `json:"total"`
}

// GetOrderForUpdateResponse is the payload of GET /orders/:orderId/edit.
type GetOrderForUpdateResponse struct {
	OperationResponse
	Order   OrderForUpdateView   `json:"order"`
	Catalog []CatalogProductView `json:"catalog"`
}

// OrderSummaryView identifies an order and its current state.
type OrderSummaryView struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// StatusChangeView is one ledger entry, display-ready.
type StatusChangeView struct {
	ID         string    `json:"id"`
	Previous   string    `json:"previous"`
	Next       string    `json:"next"`
	Comment    string    `json:"comment,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// GetOrderWithHistoryResponse is the payload of GET /orders/:orderId/history.
// History is in creation order, oldest first.
type GetOrderWithHistoryResponse struct {
	OperationResponse
	Order   OrderSummaryView   `json:"order"`
	History []StatusChangeView `json:"history"`
}
