package service

import (
	"context"

	"tradesouq/internal/commerce"
	"tradesouq/internal/model"
	"tradesouq/internal/repository"

	"github.com/google/uuid"
)

// CatalogService defines operations over the product catalogue.
type CatalogService interface {
	// GetAll retrieves products matching the filter.
	GetAll(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// SyncStock seeds the stock reserver with current catalogue levels.
	SyncStock(ctx context.Context) error
}

// CheckoutService places orders: buy-now for a single product, or draining
// the whole cart. Both paths reserve stock, charge the payment gateway and
// then run the engine's order primitive.
type CheckoutService interface {
	// BuyNow places a single order. A zero quantity defaults to the
	// product's MOQ.
	BuyNow(ctx context.Context, engine *commerce.Engine, req CheckoutRequest) (*model.Order, error)

	// CheckoutCart places one order per cart line, draining the cart.
	CheckoutCart(ctx context.Context, engine *commerce.Engine, req CheckoutRequest) ([]model.Order, error)

	// RestoreOrders loads the user's persisted orders into the session
	// history, most recent first. Called when a session is established.
	RestoreOrders(ctx context.Context, engine *commerce.Engine) error
}

// FulfillmentService advances order status on behalf of the external
// fulfilment process.
type FulfillmentService interface {
	// ApplyStatus moves an order to the next status, enforcing the
	// forward-only status machine.
	ApplyStatus(ctx context.Context, id uuid.UUID, next model.OrderStatus) (*model.Order, error)
}

// CheckoutRequest carries the client's checkout intent.
type CheckoutRequest struct {
	// ProductID and Quantity apply to buy-now only.
	ProductID string `json:"productId,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`

	CardNumber string `json:"cardNumber"`

	// IdempotencyKey, when set, guards against double submission.
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}
