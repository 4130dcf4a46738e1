package ports

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Listing is served by queries.ListOrdersQueryHandler and is not part of it.
type OrderRepository interface {
	// Add persists a new order header followed by each of its line items and
	// assigns the store-generated id to the aggregate. Run it inside a unit
	// of work: on error the caller rolls the whole order back.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// UpdateStatus writes the aggregate's current status; nothing else changes.
	// Returns errs.ObjectNotFoundError when the order no longer exists.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error
}
