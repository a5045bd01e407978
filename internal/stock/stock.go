package stock

import "context"

// Reserver guards product stock across concurrent checkouts. Reservations
// are taken before payment and released if payment fails; fulfilment
// decrements real stock elsewhere.
type Reserver interface {
	// Reserve atomically takes quantity units for the product, returning
	// false if not enough remain.
	Reserve(ctx context.Context, productID string, quantity int) (bool, error)

	// Release returns quantity units for the product (rollback on failure).
	Release(ctx context.Context, productID string, quantity int) error

	// SetLevel initialises the reservable level for the product.
	SetLevel(ctx context.Context, productID string, quantity int) error

	// Begin sets an idempotency key for a checkout request, returning
	// false if the same request is already in flight.
	Begin(ctx context.Context, key string) (bool, error)
}
