package repository

import (
	"context"

	"tradesouq/internal/model"

	"github.com/google/uuid"
)

// ProductFilter narrows a catalogue listing.
type ProductFilter struct {
	// Category restricts results to one category; empty means all.
	Category string

	// Search is matched case-insensitively against the English name.
	Search string

	Limit  int
	Offset int
}

// ProductRepository defines the interface for catalogue data access. The
// catalogue is read-only from the engine's point of view; listings are
// maintained by an external seller process.
type ProductRepository interface {
	// GetAll retrieves products matching the filter.
	GetAll(ctx context.Context, filter ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// StockLevels returns the id -> stock mapping for every product,
	// used to seed the stock reserver at startup.
	StockLevels(ctx context.Context) (map[string]int, error)
}

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Insert persists a newly placed order.
	Insert(ctx context.Context, order *model.Order) error

	// GetByID retrieves an order by its ID. Returns nil when the order
	// does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByUser retrieves a user's orders, most recent first.
	GetByUser(ctx context.Context, userID string) ([]model.Order, error)

	// UpdateStatus moves an order from one status to another. The update
	// only applies if the order is still in the expected current status.
	UpdateStatus(ctx context.Context, id uuid.UUID, current, next model.OrderStatus) error
}
