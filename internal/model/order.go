package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the defined statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status machine permits moving from s
// to next. Transitions only run forward: pending -> shipped -> delivered,
// or pending -> cancelled.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	}
	return false
}

// Order is a placed order. The product snapshot and total are fixed at
// creation time; only the status changes afterwards, driven by fulfilment.
type Order struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	UserID    string      `json:"userId" db:"user_id"`
	Product   Product     `json:"product" db:"product"`
	Quantity  int         `json:"quantity" db:"quantity"`
	Total     float64     `json:"total" db:"total"`
	Status    OrderStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderRequest is the payload for a buy-now order. A zero quantity means
// "use the product's MOQ".
type OrderRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// StatusRequest is the payload for a fulfilment status update.
type StatusRequest struct {
	Status OrderStatus `json:"status"`
}
